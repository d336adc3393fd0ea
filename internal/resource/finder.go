package resource

import (
	"context"
	"fmt"
)

// Find resolves query against the detailed listing of kind and returns the
// first record whose display name or uuid equals it exactly.
//
// The listing is fetched on every call.
func (r *Registry) Find(ctx context.Context, kind Kind, query string) (Record, error) {
	records, err := r.List(ctx, kind, true)
	if err != nil {
		return nil, err
	}
	return match(records, kind, query)
}

// FindServer resolves a server by name or uuid.
func (r *Registry) FindServer(ctx context.Context, query string) (Server, error) {
	return findIn[Server](ctx, r.services.Servers, KindServer, query)
}

// FindDrive resolves a drive by name or uuid.
func (r *Registry) FindDrive(ctx context.Context, query string) (Drive, error) {
	return findIn[Drive](ctx, r.services.Drives, KindDrive, query)
}

// FindVLAN resolves a VLAN by its meta name or uuid.
func (r *Registry) FindVLAN(ctx context.Context, query string) (VLAN, error) {
	return findIn[VLAN](ctx, r.services.VLANs, KindVLAN, query)
}

// FindIP resolves an IP by its meta name or address.
func (r *Registry) FindIP(ctx context.Context, query string) (IP, error) {
	return findIn[IP](ctx, r.services.IPs, KindIP, query)
}

// FindSubscription resolves a subscription by uuid.
func (r *Registry) FindSubscription(ctx context.Context, query string) (Subscription, error) {
	return findIn[Subscription](ctx, r.services.Subscriptions, KindSubscription, query)
}

func findIn[T Record](ctx context.Context, svc Service[T], kind Kind, query string) (T, error) {
	var zero T
	if svc == nil {
		return zero, fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}
	items, err := svc.ListDetail(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if matches(item, query) {
			return item, nil
		}
	}
	return zero, &NotFoundError{Kind: kind, Query: query}
}

func match(records []Record, kind Kind, query string) (Record, error) {
	for _, rec := range records {
		if matches(rec, query) {
			return rec, nil
		}
	}
	return nil, &NotFoundError{Kind: kind, Query: query}
}

func matches(rec Record, query string) bool {
	if query == "" {
		return false
	}
	return rec.DisplayName() == query || rec.ID() == query
}
