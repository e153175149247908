package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeTxNoPing satisfies TxRunner but not Pinger
type fakeTxNoPing struct{}

func (f *fakeTxNoPing) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return fn(f) }
func (f *fakeTxNoPing) Exec(context.Context, string, ...any) (CommandTag, error) {
	return nil, nil
}
func (f *fakeTxNoPing) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }

// fakeTxWithPing satisfies TxRunner and Pinger
type fakeTxWithPing struct {
	fakeTxNoPing
	err error
}

func (f *fakeTxWithPing) Ping(context.Context) error { return f.err }

func TestGuard(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cases := []struct {
		name     string
		store    *Store
		wantErr  bool
		prefixes []string
	}{
		{name: "nil store", store: nil, wantErr: true},
		{name: "no seams", store: &Store{}},
		{name: "pg not a pinger", store: &Store{PG: &fakeTxNoPing{}}},
		{name: "pg ok", store: &Store{PG: &fakeTxWithPing{}}},
		{name: "pg down", store: &Store{PG: &fakeTxWithPing{err: boom}}, wantErr: true, prefixes: []string{"pg: "}},
		{name: "ch ok", store: &Store{CH: newCHAdapter(&fakeCH{})}},
		{name: "ch down", store: &Store{CH: newCHAdapter(&fakeCH{pingErr: boom})}, wantErr: true, prefixes: []string{"ch: "}},
		{
			name:     "both down",
			store:    &Store{PG: &fakeTxWithPing{err: boom}, CH: newCHAdapter(&fakeCH{pingErr: boom})},
			wantErr:  true,
			prefixes: []string{"pg: ", "ch: "},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.store.Guard(context.Background())
			if (err != nil) != tc.wantErr {
				t.Fatalf("Guard err = %v, wantErr %v", err, tc.wantErr)
			}
			for _, p := range tc.prefixes {
				if !strings.Contains(err.Error(), p) {
					t.Fatalf("error %q missing %q", err.Error(), p)
				}
			}
			if len(tc.prefixes) > 0 && !errors.Is(err, boom) {
				t.Fatalf("error %v does not wrap the cause", err)
			}
		})
	}
}
