package handlers

import (
	"context"

	"github.com/imamik/ccs/internal/resource"
)

// FindOptions configures the find command.
type FindOptions struct {
	Kind   string
	Query  string
	Human  bool
	Output string
}

// Find handles the find command. It prints the detailed record whose name or
// uuid equals the query.
func Find(ctx context.Context, global *GlobalOptions, opts FindOptions) (err error) {
	if err := validateOutput(opts.Output, OutputJSON, OutputYAML); err != nil {
		return err
	}
	kind, err := resource.ParseKind(opts.Kind)
	if err != nil {
		return err
	}

	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	rec, err := s.registry.Find(ctx, kind, opts.Query)
	if err != nil {
		return err
	}
	if opts.Human {
		return s.printRecord(ctx, rec)
	}
	return writeStructured(global.stdout(), opts.Output, rec)
}
