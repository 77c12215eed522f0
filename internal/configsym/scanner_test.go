package configsym_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.trai.ch/fixdep/internal/configsym"
)

func findAll(s *configsym.Scanner, text string) []string {
	var syms []string
	s.Find([]byte(text), func(sym []byte) {
		syms = append(syms, string(sym))
	})
	return syms
}

func TestScanner_Find(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want []string
	}{
		{
			name: "ifdef",
			text: "#ifdef CONFIG_SMP\nint nr_cpus;\n#endif\n",
			want: []string{"SMP"},
		},
		{
			name: "multiple",
			text: "#if defined(CONFIG_NET) && defined(CONFIG_INET)\n",
			want: []string{"NET", "INET"},
		},
		{
			name: "duplicate within block",
			text: "CONFIG_FOO CONFIG_FOO CONFIG_BAR",
			want: []string{"FOO", "BAR"},
		},
		{
			name: "mentioned in comment",
			text: "/* depends on CONFIG_HIS_DRIVER */\n",
			want: []string{"HIS_DRIVER"},
		},
		{
			name: "module suffix kept literal",
			text: "#ifdef CONFIG_USB_MODULE\n",
			want: []string{"USB_MODULE"},
		},
		{
			name: "bare prefix",
			text: "the CONFIG_ prefix alone means nothing",
			want: nil,
		},
		{
			name: "prefix at end of text",
			text: "CONFIG_",
			want: nil,
		},
		{
			name: "symbol at end of text",
			text: "#ifdef CONFIG_PM",
			want: []string{"PM"},
		},
		{
			name: "lowercase and digits",
			text: "CONFIG_arm64_ERRATUM_843419",
			want: []string{"arm64_ERRATUM_843419"},
		},
		{
			name: "no symbols",
			text: "int main(void) { return 0; }\n",
			want: nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := findAll(configsym.NewScanner(), tc.text)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_DeduplicatesAcrossCalls(t *testing.T) {
	s := configsym.NewScanner()

	first := findAll(s, "#ifdef CONFIG_SMP\n#ifdef CONFIG_NUMA\n")
	second := findAll(s, "#ifdef CONFIG_SMP\n#ifdef CONFIG_PM\n")

	if diff := cmp.Diff([]string{"SMP", "NUMA"}, first); diff != "" {
		t.Errorf("first call mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"PM"}, second); diff != "" {
		t.Errorf("second call mismatch (-want +got):\n%s", diff)
	}
}

func TestExpander_Expand(t *testing.T) {
	var buf bytes.Buffer
	e := configsym.NewExpander(&buf, "include/config")

	if err := e.Expand([]byte("#ifdef CONFIG_SMP\n#ifdef CONFIG_SMP\n#ifdef CONFIG_PM\n")); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	want := "    $(wildcard include/config/SMP) \\\n" +
		"    $(wildcard include/config/PM) \\\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExpander_NothingToExpand(t *testing.T) {
	var buf bytes.Buffer
	e := configsym.NewExpander(&buf, "include/config")

	if err := e.Expand([]byte("plain text\n")); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
