package bootstrap

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/blogkit/component"
	"github.com/kbukum/blogkit/config"
	"github.com/kbukum/blogkit/logger"
)

type testConfig struct {
	config.ServiceConfig
}

type mockComponent struct {
	name     string
	startErr error
	stopErr  error
	health   component.Health
	started  bool
	stopped  bool
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	m.started = true
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	m.stopped = true
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) component.Health {
	if m.health.Name == "" {
		return component.Health{Name: m.name, Status: component.StatusHealthy}
	}
	return m.health
}

func newTestApp(t *testing.T) *App[*testConfig] {
	t.Helper()
	cfg := &testConfig{ServiceConfig: config.ServiceConfig{Name: "blogctl", Version: "1.0.0"}}
	app, err := NewApp(cfg, WithLogger(logger.Nop()), WithGracefulTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)
	if app.Name != "blogctl" || app.Version != "1.0.0" {
		t.Errorf("unexpected identity %s %s", app.Name, app.Version)
	}
	if app.Cfg.Environment != "development" {
		t.Errorf("defaults not applied, environment = %q", app.Cfg.Environment)
	}
	if app.Components == nil || app.Logger == nil {
		t.Error("expected registry and logger")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	_, err := NewApp(&testConfig{}, WithLogger(logger.Nop()))
	if err == nil || !strings.Contains(err.Error(), "config validation") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunTask_Lifecycle(t *testing.T) {
	app := newTestApp(t)
	comp := &mockComponent{name: "api"}
	app.RegisterComponent(comp)

	var order []string
	app.OnStart(func(ctx context.Context) error { order = append(order, "start"); return nil })
	app.OnStop(func(ctx context.Context) error { order = append(order, "stop"); return nil })

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		if !comp.started {
			t.Error("component should be started before the task")
		}
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}
	if !comp.stopped {
		t.Error("component should be stopped after the task")
	}
	if strings.Join(order, ",") != "start,task,stop" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestRunTask_TaskErrorWins(t *testing.T) {
	app := newTestApp(t)
	comp := &mockComponent{name: "api", stopErr: errors.New("flush failed")}
	app.RegisterComponent(comp)

	taskErr := errors.New("not found")
	err := app.RunTask(context.Background(), func(ctx context.Context) error { return taskErr })
	if !errors.Is(err, taskErr) {
		t.Fatalf("expected task error, got %v", err)
	}
	if !comp.stopped {
		t.Error("component should be stopped even when the task fails")
	}
}

func TestRunTask_StopErrorReported(t *testing.T) {
	app := newTestApp(t)
	app.RegisterComponent(&mockComponent{name: "api", stopErr: errors.New("flush failed")})

	err := app.RunTask(context.Background(), func(ctx context.Context) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "flush failed") {
		t.Fatalf("expected stop error, got %v", err)
	}
}

func TestRunTask_StartFailure(t *testing.T) {
	app := newTestApp(t)
	first := &mockComponent{name: "telemetry"}
	app.RegisterComponent(first)
	app.RegisterComponent(&mockComponent{name: "api", startErr: errors.New("bad url")})

	ran := false
	err := app.RunTask(context.Background(), func(ctx context.Context) error { ran = true; return nil })
	if err == nil || !strings.Contains(err.Error(), "bad url") {
		t.Fatalf("expected start error, got %v", err)
	}
	if ran {
		t.Error("task must not run after a failed start")
	}
	if !first.stopped {
		t.Error("started components should be stopped after a failed start")
	}
}

func TestRunTask_ContextCanceled(t *testing.T) {
	app := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.RunTask(ctx, func(ctx context.Context) error { return ctx.Err() })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestReadyCheckAndStatus(t *testing.T) {
	app := newTestApp(t)
	app.RegisterComponent(&mockComponent{name: "api"})
	app.RegisterComponent(&mockComponent{name: "telemetry", health: component.Health{
		Name: "telemetry", Status: component.StatusDegraded, Message: "exporter unreachable",
	}})

	err := app.ReadyCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "telemetry=degraded(exporter unreachable)") {
		t.Errorf("unexpected ready check %v", err)
	}

	status := app.Status(context.Background())
	if len(status) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(status))
	}
	if status[0].Name != "api" || status[0].Status != component.StatusHealthy {
		t.Errorf("unexpected status %+v", status[0])
	}
	if status[1].Message != "exporter unreachable" {
		t.Errorf("unexpected status %+v", status[1])
	}
}
