package summarizer

import (
	"reflect"
	"testing"
)

func TestFallback(t *testing.T) {
	want := &Summary{
		AvanceClase:     []string{"Revisar transcripción adjunta."},
		Tareas:          []string{},
		Pendientes:      []string{},
		PreguntasExamen: []string{},
	}

	if got := Fallback(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fallback() = %+v, want %+v", got, want)
	}
}

func TestParseSummaryJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Summary
		wantErr bool
	}{
		{
			name: "all keys present",
			content: `{"avance_clase": ["a"], "tareas": ["b"],
				"pendientes": ["c"], "preguntas_examen": ["d"]}`,
			want: &Summary{
				AvanceClase:     []string{"a"},
				Tareas:          []string{"b"},
				Pendientes:      []string{"c"},
				PreguntasExamen: []string{"d"},
			},
		},
		{
			name:    "missing keys decode as empty",
			content: `{"tareas": ["leer capítulo 3"]}`,
			want:    &Summary{Tareas: []string{"leer capítulo 3"}},
		},
		{
			name:    "fenced json",
			content: "```json\n{\"avance_clase\": [\"x\"]}\n```",
			want:    &Summary{AvanceClase: []string{"x"}},
		},
		{
			name:    "plain fence",
			content: "```\n{\"avance_clase\": [\"x\"]}\n```",
			want:    &Summary{AvanceClase: []string{"x"}},
		},
		{
			name:    "not json",
			content: "aquí tienes tu resumen:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSummaryJSON(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSummaryJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSummaryJSON() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
