package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"detailpage/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	data := domain.DefaultProductData()
	data.ProductNameKr = "프리미엄 텀블러"
	data.SummaryInfo.Material = "스테인리스"
	data.Point1Image2 = domain.PendingValue
	data.Options = []domain.ProductOption{
		{ID: "opt-1", Name: "Black", Rect: &domain.Rect{X: 10, Y: 20, Width: 100, Height: 40}},
	}
	data.WatermarkSettings = map[string]domain.WatermarkSetting{
		string(domain.SlotMain): {Rect: domain.Rect{Width: 80, Height: 20}, Visible: true},
	}

	if err := s.Save(ctx, "default", data); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	restored, err := s.Load(ctx, "default")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(data, restored) {
		t.Fatalf("round trip mismatch:\nsaved    %+v\nrestored %+v", data, restored)
	}
}

func TestLoadOldSnapshotFallsBackToDefaults(t *testing.T) {
	s := newTestStore(t)

	// A snapshot from an earlier schema that only knew a few fields.
	old := `{"productNameKr":"옛날 상품","mainImage":"data:image/png;base64,AAAA"}`
	if err := os.WriteFile(filepath.Join(s.BasePath(), "legacy.json"), []byte(old), 0o644); err != nil {
		t.Fatalf("write legacy snapshot: %v", err)
	}

	restored, err := s.Load(context.Background(), "legacy")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if restored.ProductNameKr != "옛날 상품" {
		t.Fatalf("ProductNameKr = %q", restored.ProductNameKr)
	}
	if restored.ThemeColor != domain.DefaultThemeColor {
		t.Fatalf("missing field should default, ThemeColor = %q", restored.ThemeColor)
	}
	if restored.Options == nil {
		t.Fatal("Options should default to an empty list, not nil")
	}
}

func TestLoadMissingSlot(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsNonObjectSnapshot(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.BasePath(), "bad.json"), []byte(`[1,2,3]`), 0o644); err != nil {
		t.Fatalf("write bad snapshot: %v", err)
	}
	_, err := s.Load(context.Background(), "bad")
	if !errors.Is(err, domain.ErrInvalidSnapshot) {
		t.Fatalf("err = %v, want ErrInvalidSnapshot", err)
	}
}

func TestSlotNameTraversalRejected(t *testing.T) {
	s := newTestStore(t)
	for _, slot := range []string{"", "../escape", "a/b", `..\escape`} {
		if err := s.Save(context.Background(), slot, domain.DefaultProductData()); err == nil {
			t.Fatalf("slot %q should be rejected", slot)
		}
	}
}

func TestSaveOverwritesExistingSlot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := domain.DefaultProductData()
	first.ProductNameKr = "하나"
	second := domain.DefaultProductData()
	second.ProductNameKr = "둘"

	if err := s.Save(ctx, "default", first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save(ctx, "default", second); err != nil {
		t.Fatalf("second save: %v", err)
	}
	restored, err := s.Load(ctx, "default")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if restored.ProductNameKr != "둘" {
		t.Fatalf("ProductNameKr = %q, want 둘", restored.ProductNameKr)
	}
}
