// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"errors"
	"strings"
	"testing"
)

func mustCompute(t *testing.T, original, corrected string) string {
	t.Helper()
	got, err := Compute(original, corrected)
	if err != nil {
		t.Fatalf("Compute(%q, %q) error: %v", original, corrected, err)
	}
	return got
}

func TestCompute_CJKSingleCharChange(t *testing.T) {
	got := mustCompute(t, "证据水平是A。", "证据水平是B。")
	want := "证据水平是<false>A</false><true>B</true>。"
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestCompute_HyphenatedWordReplace(t *testing.T) {
	got := mustCompute(t, "machine-learning", "machine learning")
	want := "<false>machine-learning</false><true>machine learning</true>"
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestCompute_UnitNumberAtomic(t *testing.T) {
	got := mustCompute(t, "The result is 24h.", "The result is 48h.")
	want := "The result is <false>24h</false><true>48h</true>."
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestCompute_WhitespaceOnlyChangeSuppressed(t *testing.T) {
	got := mustCompute(t, "a  b", "a b")
	if strings.Contains(got, OpenFalse) || strings.Contains(got, OpenTrue) {
		t.Errorf("Whitespace-only diff must emit no markers, got %q", got)
	}
	if got != "a b" {
		t.Errorf("Compute = %q, want %q", got, "a b")
	}
}

func TestCompute_FormulaUntouched(t *testing.T) {
	got := mustCompute(t, "$E=mc^2$ is famous", "$E=mc^2$ is well known")
	want := "$E=mc^2$ is <false>famous</false><true>well known</true>"
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestCompute_FormulaAtomicReplace(t *testing.T) {
	// A changed formula is replaced as a whole, never split across a
	// marker boundary
	got := mustCompute(t, "see $a+b$ here", "see $a+c$ here")
	want := "see <false>$a+b$</false><true>$a+c$</true> here"
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestCompute_InputTooLarge(t *testing.T) {
	big := strings.Repeat("a", MaxInputChars+1)
	if _, err := Compute(big, "b"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Expected ErrInputTooLarge for oversized original, got %v", err)
	}
	if _, err := Compute("a", big); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Expected ErrInputTooLarge for oversized corrected, got %v", err)
	}
	// Exactly at the ceiling is allowed
	edge := strings.Repeat("a", MaxInputChars)
	if _, err := Compute(edge, edge); err != nil {
		t.Errorf("Input at the ceiling must pass, got %v", err)
	}
}

func TestCompute_EmptyInputs(t *testing.T) {
	if got := mustCompute(t, "", ""); got != "" {
		t.Errorf("Compute of two empty strings = %q, want empty", got)
	}
	if got := mustCompute(t, "", "new"); got != "<true>new</true>" {
		t.Errorf("Compute = %q, want pure insertion", got)
	}
	if got := mustCompute(t, "old", ""); got != "<false>old</false>" {
		t.Errorf("Compute = %q, want pure deletion", got)
	}
}

func TestCompute_Identity(t *testing.T) {
	inputs := []string{
		"unchanged text",
		"证据水平是A。",
		"$E=mc^2$ and $$x$$",
		"  spaced\tout  ",
	}
	for _, in := range inputs {
		got := mustCompute(t, in, in)
		if got != in {
			t.Errorf("Compute(x, x) = %q, want %q", got, in)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := "The 评分 is 3.14cm wide, $x^2$ tall."
	b := "The 评分 was 6.28cm wide, $y^2$ tall."
	first := mustCompute(t, a, b)
	second := mustCompute(t, a, b)
	if first != second {
		t.Errorf("Compute not deterministic: %q != %q", first, second)
	}
}

func TestCompute_RoundTrips(t *testing.T) {
	cases := []struct{ a, b string }{
		{"证据水平是A。", "证据水平是B。"},
		{"machine-learning", "machine learning"},
		{"The result is 24h.", "The result is 48h."},
		{"$E=mc^2$ is famous", "$E=mc^2$ is well known"},
		{"wholly different", "nothing shared!"},
		{"", "added"},
		{"removed", ""},
		{"相同的文本", "相同的文本"},
	}
	for _, tc := range cases {
		tagged := mustCompute(t, tc.a, tc.b)
		if got := RestoreOriginal(tagged); got != tc.a {
			t.Errorf("RestoreOriginal(%q) = %q, want %q", tagged, got, tc.a)
		}
		if got := RestoreCorrected(tagged); got != tc.b {
			t.Errorf("RestoreCorrected(%q) = %q, want %q", tagged, got, tc.b)
		}
	}
}

func TestCompute_CorrectedRoundTripWithWhitespaceSuppression(t *testing.T) {
	// Whitespace demotion keeps the corrected side, so the corrected
	// round trip holds even when markers were suppressed
	tagged := mustCompute(t, "a  b c", "a b  c")
	if got := RestoreCorrected(tagged); got != "a b  c" {
		t.Errorf("RestoreCorrected = %q, want %q", got, "a b  c")
	}
}

func TestCompute_OutputAlwaysBalanced(t *testing.T) {
	cases := [][2]string{
		{"a b c", "a x c"},
		{"x", "y"},
		{"del mid keep", "keep"},
		{"前面 middle 后面", "后面 middle 前面"},
	}
	for _, tc := range cases {
		tagged := mustCompute(t, tc[0], tc[1])
		if !ValidateTags(tagged) {
			t.Errorf("Unbalanced output %q", tagged)
		}
	}
}

func TestComputeStats(t *testing.T) {
	tagged := mustCompute(t, "one two three", "one 2 three")
	stats := ComputeStats(tagged)
	if !stats.HasChanges() {
		t.Fatalf("Expected changes in %q", tagged)
	}
	if stats.Deletions != 1 || stats.Insertions != 1 {
		t.Errorf("Stats = %+v for %q", stats, tagged)
	}

	if ComputeStats("no change").HasChanges() {
		t.Errorf("Plain text must report no changes")
	}
}

func TestStripTags(t *testing.T) {
	tagged := "keep <false>old</false><true>new</true> tail"
	if got := StripTags(tagged); got != "keep oldnew tail" {
		t.Errorf("StripTags = %q", got)
	}
}

func BenchmarkCompute_MixedText(b *testing.B) {
	orig := strings.Repeat("证据水平是A。The result is 24h and $x^2$ more. ", 200)
	corr := strings.Repeat("证据水平是B。The result is 48h and $x^2$ more! ", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compute(orig, corr); err != nil {
			b.Fatal(err)
		}
	}
}
