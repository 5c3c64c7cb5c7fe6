package filtering

import (
	"strings"
	"testing"
)

func TestVerifyCleanContent(t *testing.T) {
	content := strings.Join([]string{
		"ss://abc",
		"",
		"vmess://xyz",
	}, "\n")

	result := Verify(content, 3)
	if !result.OK {
		t.Error("expected clean content to pass verification")
	}
	if result.Found != 0 || len(result.Offending) != 0 {
		t.Errorf("expected no offending lines, got %d (%q)", result.Found, result.Offending)
	}
}

func TestVerifyFindsLeftovers(t *testing.T) {
	content := strings.Join([]string{
		"ss://abc",
		"http=1.1.1.1:80",
		"HTTPS=2.2.2.2:443",
		"socks5=3.3.3.3:1080",
		"SOCKS5=4.4.4.4:1080",
	}, "\n")

	result := Verify(content, 3)
	if result.OK {
		t.Error("expected verification to fail")
	}
	if result.Found != 4 {
		t.Errorf("found = %d, want 4", result.Found)
	}
	if len(result.Offending) != 3 {
		t.Errorf("offending list length = %d, want truncation to 3", len(result.Offending))
	}
}

func TestVerifyUnlimitedOffenders(t *testing.T) {
	content := "http=a\nhttp=b\nhttp=c"
	result := Verify(content, 0)
	if len(result.Offending) != 3 {
		t.Errorf("offending list length = %d, want all 3", len(result.Offending))
	}
}

func TestVerifyFilteredOutputAlwaysPasses(t *testing.T) {
	input := strings.Join([]string{
		"ss://abc",
		"http=drop",
		"HTTPS=drop",
		"socks5=drop",
		"",
		"trojan://keep",
	}, "\n")

	filtered := Apply(input, Options{})
	result := Verify(filtered.Text(), 3)
	if !result.OK {
		t.Errorf("filtered output failed verification: %q", result.Offending)
	}
}
