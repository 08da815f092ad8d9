package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestReadObjectsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.json")
	snapshot := `[
  {"id": "kpi-1", "name": "Sales", "type": "kpi",
   "position": {"x": 0, "y": 0}, "size": {"width": 200, "height": 100}},
  {"id": "chart-1", "name": "Trend", "type": "linechart",
   "position": {"x": 220, "y": 0}, "size": {"width": 400, "height": 300}}
]`
	if err := os.WriteFile(path, []byte(snapshot), 0600); err != nil {
		t.Fatal(err)
	}

	objects, err := ReadObjectsFile(path)
	if err != nil {
		t.Fatalf("ReadObjectsFile: %v", err)
	}

	ctx := context.Background()
	list, err := objects.ListObjects(ctx)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(list) != 2 || list[0].ID != "kpi-1" || list[1].ID != "chart-1" {
		t.Errorf("objects = %+v", list)
	}

	rect, ok, err := objects.ObjectPosition(ctx, "chart-1")
	if err != nil || !ok {
		t.Fatalf("ObjectPosition: %v %v %v", rect, ok, err)
	}
	if rect.X != 220 || rect.Width != 400 {
		t.Errorf("rect = %v", rect)
	}
}

func TestReadObjectsFile_Errors(t *testing.T) {
	if _, err := ReadObjectsFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0600)
	if _, err := ReadObjectsFile(path); err == nil {
		t.Error("malformed file: want error")
	}
}

func TestNewGatewayComposes(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryGateway()
	var btn ContainerObject
	btn.ID = "btn-1"
	btn.Size.Width = 80
	btn.Size.Height = 24
	objects := NewObjectMap([]ContainerObject{btn})

	gw := NewGateway(mem, objects)

	gw.Set(ctx, "rowCount", "0")
	if err := gw.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	settings, _ := gw.All(ctx)
	if settings["rowCount"] != "0" {
		t.Errorf("settings = %v", settings)
	}

	if _, ok, _ := gw.ObjectPosition(ctx, "btn-1"); !ok {
		t.Error("ObjectPosition(btn-1) absent, want resolved")
	}
}
