package main

import (
	"context"
	"strings"
	"testing"

	"coursedex/internal/adapters/ingest"
	"coursedex/internal/core/catalog"
	"coursedex/internal/core/indexer"
	"coursedex/internal/core/query"
	kit "coursedex/internal/platform/testkit"
)

func engine(t *testing.T) *query.Engine {
	t.Helper()
	b := catalog.NewBatch()
	for _, r := range [][5]string{
		{"F23", "01", "CS-101", "Smith", "MWF 9am"},
		{"S24", "01", "CS-101", "Smith", "MWF 9am"},
		{"S24", "04", "ENGL-122", "Nguyen", "F 2pm"},
		{"S24", "04", "ENGL-130", "Nguyen", "F 2pm"},
	} {
		o, err := catalog.NewOffering(r[0], r[1], r[2], r[3], r[4])
		if err != nil {
			t.Fatalf("NewOffering: %v", err)
		}
		b.Add(o)
	}
	ix, err := indexer.Build(context.Background(), b.Primary, b.Seed)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return query.New(b.Primary, ix)
}

func TestRunMenu(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"quit", "q\n", []string{"Client menu:", "[Q] to quit"}},
		{"unknown option", "x\nQ\n", []string{"Error, try again!"}},
		{"instructor search reprompts on empty", "4\n\nsmith\nQ\n", []string{
			"Please search name for an instructor: Please search name for an instructor: ",
			"CS-101-01: F23",
			"same name",
		}},
		{"course search", "9\ncs-101\nQ\n", []string{"Terms found for CS-101", "S24"}},
		{"conflicts", "6\nQ\n", []string{"S24 04"}},
		{"input ends without quit", "3\n", []string{"Client menu:"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			if err := runMenu(strings.NewReader(tc.input), &out, engine(t)); err != nil {
				t.Fatalf("runMenu: %v", err)
			}
			for _, w := range tc.want {
				kit.MustContain(t, out.String(), w)
			}
		})
	}
}

func TestSourceFlagsOverride(t *testing.T) {
	sf := sourceFlags{source: "PG", table: "spring"}
	cfg := sf.apply(ingest.Config{Kind: ingest.KindFile, File: "dvc-schedule.csv", Table: "course_offerings"})
	if cfg.Kind != "pg" || cfg.Table != "spring" || cfg.File != "dvc-schedule.csv" {
		t.Fatalf("apply = %+v", cfg)
	}
}

func TestReportRejectsUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"report", "--format", "xml"})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	var out strings.Builder
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	kit.MustContain(t, out.String(), "coursedex dev")
}
