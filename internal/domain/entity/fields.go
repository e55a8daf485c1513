package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Ref es un identificador normalizado (stringify + trim, vacío = ausente).
// En origen puede venir como string, número u objeto anidado ({"id": ...}).
type Ref string

// refKeys orden de búsqueda cuando el identificador viene como objeto anidado.
var refKeys = []string{"id", "_id", "uid"}

// UnmarshalJSON nunca falla: lo que no se pueda interpretar queda ausente.
func (r *Ref) UnmarshalJSON(b []byte) error {
	*r = ""
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*r = Ref(strings.TrimSpace(s))
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		for _, k := range refKeys {
			if v, ok := obj[k]; ok {
				var nested Ref
				_ = nested.UnmarshalJSON(v)
				if nested != "" {
					*r = nested
					return nil
				}
			}
		}
	case 't', 'f', '[':
		// booleanos y arreglos no son identificadores
	default:
		*r = Ref(strings.TrimSpace(string(raw)))
	}
	return nil
}

// String devuelve el identificador normalizado.
func (r Ref) String() string { return strings.TrimSpace(string(r)) }

// Present indica si el identificador está informado.
func (r Ref) Present() bool { return r.String() != "" }

// FirstRef devuelve el primer identificador presente.
func FirstRef(refs ...Ref) string {
	for _, r := range refs {
		if r.Present() {
			return r.String()
		}
	}
	return ""
}

// Text es texto libre tolerante: acepta strings y números, ignora el resto.
type Text string

// UnmarshalJSON nunca falla.
func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*t = Text(s)
		}
	case '{', '[', 'n', 't', 'f':
	default:
		*t = Text(raw)
	}
	return nil
}

// String devuelve el texto recortado.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// Lower devuelve el texto recortado en minúsculas (para comparar estados y métodos).
func (t Text) Lower() string { return strings.ToLower(t.String()) }

// FirstText devuelve el primer texto no vacío.
func FirstText(texts ...Text) string {
	for _, t := range texts {
		if s := t.String(); s != "" {
			return s
		}
	}
	return ""
}

// Flag booleano tolerante: true, "true", 1, "1", "yes".
type Flag bool

// UnmarshalJSON nunca falla.
func (f *Flag) UnmarshalJSON(b []byte) error {
	raw := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch raw {
	case "true", "1", "yes", "si", "sí":
		*f = true
	default:
		*f = false
	}
	return nil
}
