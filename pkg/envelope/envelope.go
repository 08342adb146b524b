package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"storefront/pkg/restclient"
)

// DataField - поле конверта, в котором бэкенд кладёт полезную нагрузку.
const DataField = "data"

type Kind int

const (
	KindUnexpected Kind = iota
	KindArray
	KindEnvelope
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindEnvelope:
		return "envelope"
	default:
		return "unexpected"
	}
}

// Shape - результат классификации тела ответа.
// Items заполнен только для KindArray и KindEnvelope.
type Shape struct {
	Kind  Kind
	Items []any
	Raw   any
}

// Classify: массив используется как есть, объект с массивом в поле data
// разворачивается, всё остальное - KindUnexpected.
func Classify(body any) Shape {
	switch v := body.(type) {
	case []any:
		return Shape{Kind: KindArray, Items: v, Raw: body}
	case map[string]any:
		if items, ok := v[DataField].([]any); ok {
			return Shape{Kind: KindEnvelope, Items: items, Raw: body}
		}
	}
	return Shape{Kind: KindUnexpected, Raw: body}
}

// Normalize возвращает элементы списка. Для неожиданной формы - пустой
// срез и *ShapeError, никогда nil срез.
func Normalize(body any) ([]any, error) {
	shape := Classify(body)
	if shape.Kind == KindUnexpected {
		return []any{}, newShapeError(body, diagnose(body))
	}
	return shape.Items, nil
}

// Decode раскладывает нормализованные элементы в типизированные модели.
// Элемент, который не декодируется в T, тоже ошибка формы.
func Decode[T any](items []any) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return []T{}, newShapeError(item, fmt.Sprintf("item %d: %v", i, err))
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()

		var v T
		if err := dec.Decode(&v); err != nil {
			return []T{}, newShapeError(item, fmt.Sprintf("item %d: %v", i, err))
		}
		out = append(out, v)
	}
	return out, nil
}

// List = Normalize + Decode.
func List[T any](body any) ([]T, error) {
	items, err := Normalize(body)
	if err != nil {
		return []T{}, err
	}
	return Decode[T](items)
}

func diagnose(body any) string {
	switch v := body.(type) {
	case nil:
		return "empty response body"
	case string:
		if restclient.LooksLikeHTML(v) {
			return "HTML document received, backend base URL may be misconfigured"
		}
		return "plain text received, expected an array"
	case map[string]any:
		data, ok := v[DataField]
		if !ok {
			return fmt.Sprintf("object without %q field received, expected an array", DataField)
		}
		return fmt.Sprintf("%q field is %s, expected an array", DataField, typeName(data))
	default:
		return fmt.Sprintf("%s received, expected an array", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
