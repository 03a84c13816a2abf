package logger

import (
	"errors"
	"os"
	"testing"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
)

func TestMain(m *testing.M) {
	_ = Init(config.LoggingConfig{Level: "error"})
	os.Exit(m.Run())
}

func TestComponentReusesServiceLoggers(t *testing.T) {
	if got := Component("service.catalog"); got != SVCCatalog {
		t.Fatal("service.catalog must resolve to the prebuilt logger")
	}
	if got := Component("service.cart"); got != SVCCart {
		t.Fatal("service.cart must resolve to the prebuilt logger")
	}
	if got := Component(" service.stats "); got != SVCStats {
		t.Fatal("service.stats must resolve to the prebuilt logger")
	}
	if got := Component(""); got != L {
		t.Fatal("blank component must resolve to the base logger")
	}
	if got := Component("api"); got == nil || got == L {
		t.Fatal("unknown components must get a scoped logger")
	}
}

func TestStatus(t *testing.T) {
	if got := Status(nil); got != "ok" {
		t.Fatalf("unexpected status for nil error: %q", got)
	}
	if got := Status(errors.New("boom")); got != "error" {
		t.Fatalf("unexpected status for error: %q", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(7, 42, 9); got != "7:42:9" {
		t.Fatalf("unexpected rid: %q", got)
	}
}
