package update

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.ReplyDelayMS != 1000 {
		t.Fatalf("unexpected reply delay default: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 64 || cfg.UpcomingLimit != 5 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("desktop notifications must default to off")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("PROKRA_REPLY_DELAY_MS", "250")
	t.Setenv("PROKRA_SCHEDULER_BUFFER", "128")
	t.Setenv("PROKRA_UPCOMING_LIMIT", "9")
	t.Setenv("PROKRA_DESKTOP_NOTIFICATIONS", "true")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ReplyDelayMS != 250 {
		t.Fatalf("unexpected reply delay override: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 128 || cfg.UpcomingLimit != 9 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
}

func TestRuntimeConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("PROKRA_REPLY_DELAY_MS", "soon")
	t.Setenv("PROKRA_SCHEDULER_BUFFER", "-3")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ReplyDelayMS != 1000 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("invalid env values must keep defaults: %+v", cfg)
	}
}
