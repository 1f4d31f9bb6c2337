package translit

import "testing"

func TestPhonetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii is lowercased only",
			input:    "The Go Programming Language",
			expected: "the go programming language",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "digits and punctuation unchanged",
			input:    "1984 (v2)",
			expected: "1984 (v2)",
		},
		{
			name:     "han characters become contiguous pinyin",
			input:    "中国历史",
			expected: "zhongguolishi",
		},
		{
			name:     "mixed script keeps latin parts literally",
			input:    "Go 语言",
			expected: "go yuyan",
		},
		{
			name:     "non-han script passes through",
			input:    "こころ",
			expected: "こころ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Phonetic(tt.input)
			if result != tt.expected {
				t.Errorf("Phonetic(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPhoneticDeterministic(t *testing.T) {
	first := Phonetic("红楼梦")
	second := Phonetic("红楼梦")
	if first != second {
		t.Errorf("Phonetic not deterministic: %q vs %q", first, second)
	}
}

func TestContainsHan(t *testing.T) {
	if ContainsHan("plain latin") {
		t.Error("ContainsHan(latin) = true, want false")
	}
	if !ContainsHan("水浒传") {
		t.Error("ContainsHan(han) = false, want true")
	}
	if !ContainsHan("mixed 书") {
		t.Error("ContainsHan(mixed) = false, want true")
	}
}
