package photos

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tkrause/wallery/pkg/errors"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "beach.jpg"), 40, 30)
	writeImage(t, filepath.Join(dir, "city.png"), 20, 20)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Scan(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(set) != 2 {
		t.Fatalf("len(set) = %d, want 2", len(set))
	}

	// Ordered by filename
	if set[0].Name != "beach" || set[1].Name != "city" {
		t.Errorf("names = [%s, %s], want [beach, city]", set[0].Name, set[1].Name)
	}
	if set[0].Width != 40 || set[0].Height != 30 {
		t.Errorf("beach dims = %v×%v, want 40×30", set[0].Width, set[0].Height)
	}
	if set[1].Width != 20 || set[1].Height != 20 {
		t.Errorf("city dims = %v×%v, want 20×20", set[1].Width, set[1].Height)
	}
	if set[0].ID == "" || set[0].ID == set[1].ID {
		t.Error("photos should get distinct non-empty IDs")
	}
	if set[0].Path != filepath.Join(dir, "beach.jpg") {
		t.Errorf("path = %q, want file path under %q", set[0].Path, dir)
	}
}

func TestScanEmptyDir(t *testing.T) {
	set, err := Scan(context.Background(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("len(set) = %d, want 0", len(set))
	}
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatal("Scan() should fail for a missing directory")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestScanCorruptImage(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "good.jpg"), 10, 10)
	if err := os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	// One bad file fails the whole scan; no partial sets.
	_, err := Scan(context.Background(), dir, nil)
	if err == nil {
		t.Fatal("Scan() should fail when a file cannot be decoded")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPhoto) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPhoto)
	}
}

func TestScanSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "top.jpg"), 10, 10)

	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeImage(t, filepath.Join(sub, "deep.jpg"), 10, 10)

	set, err := Scan(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(set) != 1 || set[0].Name != "top" {
		t.Errorf("set = %+v, want only the top-level photo", set)
	}
}

func TestScanCancelledContext(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		writeImage(t, filepath.Join(dir, string(rune('a'+i))+".jpg"), 10, 10)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, dir, nil); err == nil {
		t.Error("Scan() should fail with a cancelled context")
	}
}

func TestScanCustomConcurrency(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeImage(t, filepath.Join(dir, string(rune('a'+i))+".png"), 10, 10)
	}

	set, err := Scan(context.Background(), dir, &ScanOptions{Concurrency: 1})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(set) != 5 {
		t.Errorf("len(set) = %d, want 5", len(set))
	}
}
