package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/ccs/internal/resource"
)

// KindAll selects every kind listed by "list all".
const KindAll = "all"

// allKinds are the kinds covered by "list all".
var allKinds = []resource.Kind{
	resource.KindServer,
	resource.KindDrive,
	resource.KindVLAN,
	resource.KindIP,
}

// ListOptions configures the list command.
type ListOptions struct {
	Kind     string
	Detail   bool
	UUIDOnly bool
	Human    bool
	Output   string
}

// List handles the list command.
//
// Minimal records are listed by default. --detail, --uuid and --human switch
// to the detailed listing; --uuid prints one uuid per line and --human one
// formatted line per record.
func List(ctx context.Context, global *GlobalOptions, opts ListOptions) (err error) {
	if opts.UUIDOnly && opts.Human {
		return fmt.Errorf("--uuid and --human are mutually exclusive")
	}
	if err := validateOutput(opts.Output, OutputJSON, OutputYAML, OutputTable); err != nil {
		return err
	}
	if opts.Output == OutputTable && (opts.UUIDOnly || opts.Human) {
		return fmt.Errorf("-o table cannot be combined with --uuid or --human")
	}

	kinds, err := listKinds(opts.Kind)
	if err != nil {
		return err
	}

	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	sections := make(map[string]any, len(kinds))
	var all []resource.Record
	var lines []string
	for _, kind := range kinds {
		records, err := s.registry.List(ctx, kind, opts.Detail || opts.UUIDOnly || opts.Human)
		if err != nil {
			return err
		}
		all = append(all, records...)

		section, sectionLines, err := s.render(ctx, records, opts)
		if err != nil {
			return err
		}
		sections[kind.Plural()] = section
		lines = append(lines, sectionLines...)
	}

	out := global.stdout()
	switch {
	case opts.Output == OutputTable:
		writeTable(out, all)
		return nil
	case opts.Output == "" && (opts.UUIDOnly || opts.Human):
		for _, line := range lines {
			s.printLine(line)
		}
		return nil
	case len(kinds) == 1:
		return writeStructured(out, opts.Output, sections[kinds[0].Plural()])
	default:
		return writeStructured(out, opts.Output, sections)
	}
}

// render returns the structured value of one kind's listing and its plain
// text lines.
func (s *session) render(ctx context.Context, records []resource.Record, opts ListOptions) (any, []string, error) {
	switch {
	case opts.UUIDOnly:
		ids := make([]string, len(records))
		for i, rec := range records {
			ids[i] = rec.ID()
		}
		return ids, ids, nil
	case opts.Human:
		lines, err := s.formatter.FormatAll(ctx, records)
		if err != nil {
			return nil, nil, err
		}
		return lines, lines, nil
	default:
		if records == nil {
			records = []resource.Record{}
		}
		return records, nil, nil
	}
}

func listKinds(name string) ([]resource.Kind, error) {
	if name == "" || name == KindAll {
		return allKinds, nil
	}
	kind, err := resource.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []resource.Kind{kind}, nil
}
