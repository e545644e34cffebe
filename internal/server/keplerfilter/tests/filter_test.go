package tests

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/maono-vis/maono-api/internal/server/keplerfilter"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// типовой документ с одним датасетом и полем cidade
func cityDoc() map[string]any {
	return map[string]any{
		"config": map[string]any{"version": "v1"},
		"datasets": []any{
			map[string]any{
				"data": map[string]any{
					"fields": []any{
						map[string]any{"name": "cidade"},
						map[string]any{"name": "valor"},
					},
					"rows": []any{
						[]any{"Recife", float64(10)},
						[]any{"  recife  ", float64(20)},
						[]any{"Natal", float64(30)},
						[]any{nil, float64(40)},
					},
				},
			},
		},
	}
}

func rowsOf(t *testing.T, doc map[string]any, i int) []any {
	t.Helper()
	ds := doc["datasets"].([]any)[i].(map[string]any)
	return ds["data"].(map[string]any)["rows"].([]any)
}

func TestFilter_ValueCaseInsensitiveParamsTrimmed(t *testing.T) {
	t.Parallel()

	got, err := keplerfilter.FilterByFieldValue(cityDoc(), "cidade", "  RECIFE ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := rowsOf(t, got, 0)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].([]any)[0] != "Recife" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

// Обрезается только параметр. Ячейка с пробелами по краям сравнивается
// как есть и с обрезанным значением не совпадает.
func TestFilter_CellValueNotTrimmed(t *testing.T) {
	t.Parallel()

	got, err := keplerfilter.FilterByFieldValue(cityDoc(), "cidade", "recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := rowsOf(t, got, 0)
	if len(rows) != 1 {
		t.Fatalf("expected padded cell to be excluded, got %d rows", len(rows))
	}
	if rows[0].([]any)[0] != "Recife" {
		t.Fatalf("unexpected row: %v", rows[0])
	}
}

func TestFilter_FieldNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	got, err := keplerfilter.FilterByFieldValue(cityDoc(), "CIDADE", "Natal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := rowsOf(t, got, 0); len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestFilter_ZeroMatchesIsNotAnError(t *testing.T) {
	t.Parallel()

	got, err := keplerfilter.FilterByFieldValue(cityDoc(), "cidade", "Olinda")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := rowsOf(t, got, 0); len(rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(rows))
	}
}

func TestFilter_FieldNotFoundInAnyDataset(t *testing.T) {
	t.Parallel()

	_, err := keplerfilter.FilterByFieldValue(cityDoc(), "municipio", "Recife")
	if !errors.Is(err, serr.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

// Датасет без поля проходит насквозь, если поле нашлось хотя бы в одном другом
func TestFilter_DatasetWithoutFieldPassesThrough(t *testing.T) {
	t.Parallel()

	doc := cityDoc()
	other := map[string]any{
		"data": map[string]any{
			"fields": []any{map[string]any{"name": "uf"}},
			"rows":   []any{[]any{"PE"}, []any{"RN"}},
		},
	}
	doc["datasets"] = append(doc["datasets"].([]any), other)

	got, err := keplerfilter.FilterByFieldValue(doc, "cidade", "Natal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows := rowsOf(t, got, 0); len(rows) != 1 {
		t.Fatalf("expected 1 filtered row, got %d", len(rows))
	}
	if rows := rowsOf(t, got, 1); len(rows) != 2 {
		t.Fatalf("expected passthrough dataset untouched, got %d rows", len(rows))
	}
}

func TestFilter_NullValuesDropped(t *testing.T) {
	t.Parallel()

	got, err := keplerfilter.FilterByFieldValue(cityDoc(), "cidade", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// пустое значение не совпадает с null-строкой
	if rows := rowsOf(t, got, 0); len(rows) != 0 {
		t.Fatalf("expected null rows to be dropped, got %d", len(rows))
	}
}

func TestFilter_NumericValuesCompareAsShortestForm(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"datasets": []any{
			map[string]any{
				"data": map[string]any{
					"fields": []any{map[string]any{"name": "codigo"}},
					"rows": []any{
						[]any{float64(100)},
						[]any{float64(100.5)},
					},
				},
			},
		},
	}

	got, err := keplerfilter.FilterByFieldValue(doc, "codigo", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := rowsOf(t, got, 0); len(rows) != 1 {
		t.Fatalf("expected 1 row for numeric match, got %d", len(rows))
	}
}

func TestFilter_NoDatasetsPassesThrough(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"config": map[string]any{"version": "v1"}}

	got, err := keplerfilter.FilterByFieldValue(doc, "cidade", "Recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("expected document unchanged, got %v", got)
	}
}

func TestFilter_InputNotMutated(t *testing.T) {
	t.Parallel()

	doc := cityDoc()
	if _, err := keplerfilter.FilterByFieldValue(doc, "cidade", "Recife"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows := rowsOf(t, doc, 0); len(rows) != 4 {
		t.Fatalf("input document was mutated: %d rows", len(rows))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := keplerfilter.FilterByFieldValue(cityDoc(), "cidade", "Recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := keplerfilter.FilterByFieldValue(once, "cidade", "Recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("expected filter to be idempotent")
	}
}

// Дубликат имени поля: выигрывает первая колонка
func TestFilter_DuplicateFieldFirstWins(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"datasets": []any{
			map[string]any{
				"data": map[string]any{
					"fields": []any{
						map[string]any{"name": "cidade"},
						map[string]any{"name": "cidade"},
					},
					"rows": []any{
						[]any{"Recife", "Natal"},
						[]any{"Natal", "Recife"},
					},
				},
			},
		},
	}

	got, err := keplerfilter.FilterByFieldValue(doc, "cidade", "Recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := rowsOf(t, got, 0)
	if len(rows) != 1 || rows[0].([]any)[0] != "Recife" {
		t.Fatalf("expected first column to win, got %v", rows)
	}
}

func TestFilterJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(cityDoc())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out, err := keplerfilter.FilterJSON(raw, "cidade", "Natal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rows := rowsOf(t, doc, 0); len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestFilterJSON_BadJSON(t *testing.T) {
	t.Parallel()

	_, err := keplerfilter.FilterJSON(json.RawMessage(`{broken`), "cidade", "Recife")
	if !errors.Is(err, serr.ErrBadJSON) {
		t.Fatalf("expected ErrBadJSON, got %v", err)
	}
}
