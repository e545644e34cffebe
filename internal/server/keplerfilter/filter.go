// Package keplerfilter реализует структурный фильтр строк по значению поля
// для kepler JSON документов.
//
// Документ рассматривается как чёрный ящик за исключением формы:
//
//	{"datasets": [{"data": {"fields": [{"name": ...}], "rows": [[...], ...]}}]}
//
// Всё, что в эту форму не укладывается (нет datasets, датасет не объект,
// нет data.fields), проходит насквозь без изменений — клиент не гарантирует
// жёсткую схему, поэтому валидация здесь утиная, а не по схеме.
//
// Фильтр — чистая функция: вход не мутируется, повторное применение
// с теми же параметрами даёт тот же результат.
package keplerfilter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// FilterByFieldValue оставляет в каждом датасете только строки, у которых
// значение в колонке fieldName равно value без учёта регистра.
//
// Нормализуются только параметры: fieldName и value обрезаются по краям
// и приводятся к нижнему регистру. Значение ячейки приводится к строке
// и к нижнему регистру как есть, без обрезки пробелов.
//
// Правила:
//   - поле ищется по fields[i].name, сравнение в нижнем регистре,
//     при дубликатах берётся первое совпадение;
//   - датасет без такого поля возвращается без изменений;
//   - строки с null/отсутствующим значением в колонке отбрасываются;
//   - ноль совпавших строк — валидный результат, не ошибка.
//
// Единственная ошибка — ErrFieldNotFound: поле не найдено ни в одном
// датасете всего документа.
func FilterByFieldValue(doc map[string]any, fieldName, value string) (map[string]any, error) {
	rawDatasets, ok := doc["datasets"].([]any)
	if !ok {
		// нет списка датасетов — фильтровать нечего, отдаём как есть
		return doc, nil
	}

	normField := strings.ToLower(strings.TrimSpace(fieldName))
	normValue := strings.ToLower(strings.TrimSpace(value))
	matched := false

	datasets := make([]any, len(rawDatasets))
	for i, rawDS := range rawDatasets {
		ds, ok := rawDS.(map[string]any)
		if !ok {
			datasets[i] = rawDS
			continue
		}

		data, ok := ds["data"].(map[string]any)
		if !ok {
			datasets[i] = rawDS
			continue
		}

		fields, _ := data["fields"].([]any)
		fieldIndex := findFieldIndex(fields, normField)
		if fieldIndex == -1 {
			datasets[i] = rawDS
			continue
		}

		matched = true
		rows, _ := data["rows"].([]any)
		filtered := make([]any, 0, len(rows))
		for _, rawRow := range rows {
			row, ok := rawRow.([]any)
			if !ok || fieldIndex >= len(row) {
				continue
			}
			s, ok := stringify(row[fieldIndex])
			if !ok {
				// null в колонке — строка совпасть не может
				continue
			}
			if strings.ToLower(s) == normValue {
				filtered = append(filtered, rawRow)
			}
		}

		// вход не трогаем: датасет и data копируются поверхностно,
		// подменяются только rows
		newData := make(map[string]any, len(data))
		for k, v := range data {
			newData[k] = v
		}
		newData["rows"] = filtered

		newDS := make(map[string]any, len(ds))
		for k, v := range ds {
			newDS[k] = v
		}
		newDS["data"] = newData

		datasets[i] = newDS
	}

	if !matched {
		return nil, serr.ErrFieldNotFound
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	out["datasets"] = datasets

	return out, nil
}

// FilterJSON — обёртка над FilterByFieldValue для сериализованного документа.
//
// Декодирует raw, применяет фильтр и кодирует результат обратно.
func FilterJSON(raw json.RawMessage, fieldName, value string) (json.RawMessage, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, serr.ErrBadJSON
	}

	filtered, err := FilterByFieldValue(doc, fieldName, value)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(filtered)
	if err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

// findFieldIndex ищет позицию колонки по имени (уже в нижнем регистре).
// Возвращает -1, если поля нет. Первое совпадение выигрывает.
func findFieldIndex(fields []any, normField string) int {
	for i, rawField := range fields {
		f, ok := rawField.(map[string]any)
		if !ok {
			continue
		}
		name, ok := f["name"].(string)
		if !ok {
			continue
		}
		if strings.ToLower(name) == normField {
			return i
		}
	}
	return -1
}

// stringify приводит значение ячейки к строке для сравнения.
//
// false означает null — такие строки отбрасываются безусловно.
// Числа форматируются кратчайшей записью: JSON-число 100 декодируется
// как float64 и должно дать "100", а не "100.000000".
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}
