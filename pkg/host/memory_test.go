package host

import (
	"context"
	"testing"
)

func TestMemoryGateway_CommitSemantics(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	if err := g.Set(ctx, "rowCount", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := g.Set(ctx, "tour0_text", "Welcome"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Uncommitted writes must not be visible.
	settings, err := g.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(settings) != 0 {
		t.Errorf("settings before commit = %v, want empty", settings)
	}

	if err := g.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	settings, err = g.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if settings["rowCount"] != "2" || settings["tour0_text"] != "Welcome" {
		t.Errorf("settings after commit = %v", settings)
	}
}

func TestMemoryGateway_SetThenEraseCommitsAsErase(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	g.Set(ctx, "selectedFont", "Roboto")
	g.Erase(ctx, "selectedFont")
	if err := g.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	settings, _ := g.All(ctx)
	if _, ok := settings["selectedFont"]; ok {
		t.Errorf("selectedFont survived erase: %v", settings)
	}
}

func TestMemoryGateway_CloseDiscardsPending(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	g.Set(ctx, "rowCount", "9")
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	g.Commit(ctx)

	settings, _ := g.All(ctx)
	if len(settings) != 0 {
		t.Errorf("settings = %v, want empty after Close discarded pending", settings)
	}
}

func TestMemoryGateway_ObjectResolution(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	var kpi ContainerObject
	kpi.ID = "kpi-1"
	kpi.Name = "Total Sales"
	kpi.Type = "kpi"
	kpi.Position.X = 40
	kpi.Position.Y = 20
	kpi.Size.Width = 200
	kpi.Size.Height = 100
	g.SetObjects([]ContainerObject{kpi})

	objects, err := g.ListObjects(ctx)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(objects) != 1 || objects[0].Name != "Total Sales" {
		t.Errorf("objects = %v", objects)
	}

	rect, ok, err := g.ObjectPosition(ctx, "kpi-1")
	if err != nil || !ok {
		t.Fatalf("ObjectPosition(kpi-1) = %v, %v, %v", rect, ok, err)
	}
	if rect.X != 40 || rect.Y != 20 || rect.Width != 200 || rect.Height != 100 {
		t.Errorf("rect = %v", rect)
	}

	// Unknown IDs are absent, not errors.
	_, ok, err = g.ObjectPosition(ctx, "deleted")
	if err != nil {
		t.Fatalf("ObjectPosition(deleted): %v", err)
	}
	if ok {
		t.Error("ObjectPosition(deleted) resolved, want absent")
	}
}
