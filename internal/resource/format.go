package resource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/imamik/ccs/internal/units"
)

// detailFunc renders the kind-specific tail of a formatted line.
type detailFunc func(ctx context.Context, f *Formatter, rec Record) (string, error)

// detailers holds the formatting strategy per kind. Kinds without an entry
// format as "unknown".
var detailers = map[Kind]detailFunc{
	KindServer:       serverDetail,
	KindDrive:        driveDetail,
	KindVLAN:         vlanDetail,
	KindIP:           ipDetail,
	KindSubscription: func(context.Context, *Formatter, Record) (string, error) { return "", nil },
}

// Formatter renders human-readable one-line descriptions of records,
// resolving referenced resources to their names.
type Formatter struct {
	registry *Registry
}

// NewFormatter returns a formatter that resolves names through r.
func NewFormatter(r *Registry) *Formatter {
	return &Formatter{registry: r}
}

// Format returns "<kind> <uuid> '<name>' <detail>".
//
// Every name is looked up with a fresh Find, so formatting a record costs one
// listing per referenced resource. Lookup failures are returned; nothing else
// about the record can make Format fail.
func (f *Formatter) Format(ctx context.Context, rec Record) (string, error) {
	detail, ok := detailers[rec.Kind()]
	if !ok {
		return fmt.Sprintf("unknown %s '' ", rec.ID()), nil
	}

	name, err := f.NameOf(ctx, rec.Kind(), rec.ID())
	if err != nil {
		return "", err
	}
	tail, err := detail(ctx, f, rec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s '%s' %s", rec.Kind(), rec.ID(), name, tail), nil
}

// FormatAll formats each record in order.
func (f *Formatter) FormatAll(ctx context.Context, records []Record) ([]string, error) {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		line, err := f.Format(ctx, rec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// NameOf looks up the display name of the record of kind with the given
// uuid, falling back to "<unnamed_<kind>>". Subscriptions are never looked up.
func (f *Formatter) NameOf(ctx context.Context, kind Kind, uuid string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}
	if kind == KindSubscription {
		return unnamed(kind), nil
	}
	rec, err := f.registry.Find(ctx, kind, uuid)
	if err != nil {
		return "", err
	}
	if name := rec.DisplayName(); name != "" {
		return name, nil
	}
	return unnamed(kind), nil
}

func (f *Formatter) namesOf(ctx context.Context, kind Kind, refs []Ref) ([]string, error) {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		name, err := f.NameOf(ctx, kind, ref.UUID)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func serverDetail(ctx context.Context, f *Formatter, rec Record) (string, error) {
	s, ok := rec.(Server)
	if !ok {
		return "", nil
	}
	refs := make([]Ref, 0, len(s.Drives))
	for _, d := range s.Drives {
		refs = append(refs, d.Drive)
	}
	drives, err := f.namesOf(ctx, KindDrive, refs)
	if err != nil {
		return "", err
	}

	var ghz float64
	if s.SMP != 0 {
		ghz = float64(s.CPU) / float64(s.SMP) / 1000
	}
	return fmt.Sprintf("status=%s cpu=%dx%sGhz memory=%s drives=%s",
		s.Status, s.SMP, decimal(ghz), units.FormatSize(s.Mem), nameList(drives)), nil
}

func driveDetail(ctx context.Context, f *Formatter, rec Record) (string, error) {
	d, ok := rec.(Drive)
	if !ok {
		return "", nil
	}
	mounted := "<unmounted>"
	if len(d.MountedOn) > 0 {
		servers, err := f.namesOf(ctx, KindServer, d.MountedOn)
		if err != nil {
			return "", err
		}
		mounted = "mounted=" + nameList(servers)
	}
	return fmt.Sprintf("size=%s media=%s type=%s %s",
		units.FormatSize(d.Size), d.Media, d.StorageType, mounted), nil
}

func vlanDetail(_ context.Context, _ *Formatter, rec Record) (string, error) {
	v, ok := rec.(VLAN)
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("'%s'", v.Meta.Get("description")), nil
}

func ipDetail(ctx context.Context, f *Formatter, rec Record) (string, error) {
	ip, ok := rec.(IP)
	if !ok {
		return "", nil
	}
	owner := "free"
	if ip.Server != nil && ip.Server.UUID != "" {
		name, err := f.NameOf(ctx, KindServer, ip.Server.UUID)
		if err != nil {
			return "", err
		}
		owner = name
	}
	return fmt.Sprintf("[%s] '%s'", owner, ip.Meta.Get("description")), nil
}

func unnamed(kind Kind) string {
	return fmt.Sprintf("<unnamed_%s>", kind)
}

// nameList renders names as ['a', 'b'].
func nameList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// decimal renders v in shortest form with at least one fractional digit.
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
