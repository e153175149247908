package module

import (
	"strings"
	"testing"

	phttp "coursedex/internal/platform/net/http"
)

type readier interface{ Ready() bool }
type loader interface{ Load() error }

type svc struct{}

func (svc) Ready() bool { return true }
func (svc) Load() error { return nil }

type probe struct{}

func (probe) Ready() bool { return true }

type catalogPorts struct {
	Ready  readier
	Loader loader
	hidden loader
}

type fakeModule struct{ ports any }

func (fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any             { return m.ports }
func (fakeModule) Name() string             { return "catalog" }

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		want  bool
	}{
		{"nil ports", nil, false},
		{"direct value", svc{}, true},
		{"struct field", catalogPorts{Loader: svc{}}, true},
		{"pointer to struct", &catalogPorts{Loader: svc{}}, true},
		{"unexported field only", catalogPorts{hidden: svc{}}, false},
		{"nil field", catalogPorts{}, false},
		{"not a struct", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := PortsOf[loader](fakeModule{ports: tc.ports})
			if ok != tc.want {
				t.Fatalf("PortsOf ok = %v, want %v", ok, tc.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	m := fakeModule{ports: catalogPorts{Ready: probe{}}}
	if !MustPortsOf[readier](m).Ready() {
		t.Fatalf("ready port lost")
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "catalog") || !strings.Contains(msg, "loader") {
			t.Fatalf("panic message = %q", msg)
		}
	}()
	_ = MustPortsOf[loader](m)
}
