package logger

import (
	"strings"
	"testing"

	"github.com/armadactl/logging/formatter"
	"github.com/armadactl/logging/handler"
)

func TestRegistry_ChannelIsStable(t *testing.T) {
	reg := NewRegistry()

	a := reg.Channel("armada")
	b := reg.Channel("armada")
	if a != b {
		t.Error("Channel() must return the same instance for a name")
	}
	if a.Name() != "armada" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestRegistry_IsolatedInstances(t *testing.T) {
	regA := NewRegistry()
	regB := NewRegistry()

	buf := handler.NewBuffer(formatter.NewSubsystem(formatter.SubsystemConfig{}))
	chA := regA.Channel("armada")
	chA.SetLevel(DebugLevel)
	chA.Attach(buf)

	regB.Channel("armada").Info("other registry")

	if strings.Contains(buf.Contents(), "other registry") {
		t.Error("registries must be isolated")
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.Channel("shell")
	reg.Channel("api")
	reg.Channel("armada")

	names := reg.Names()
	want := []string{"api", "armada", "shell"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistry_Close(t *testing.T) {
	reg := NewRegistry()
	reg.Channel("armada").Attach(handler.NewBuffer(nil))
	reg.Channel("shell")

	if err := reg.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
