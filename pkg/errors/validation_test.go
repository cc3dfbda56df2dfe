package errors

import "testing"

func TestValidateCanvasString(t *testing.T) {
	valid := []string{"1080x1920", "1080x1080", "300x250", "2480x3508"}
	for _, c := range valid {
		if err := ValidateCanvasString(c); err != nil {
			t.Errorf("ValidateCanvasString(%q) = %v, want nil", c, err)
		}
	}

	invalid := []string{"", "1080", "1080x", "x1920", "1080X1920", "0x1920", "1080x0", "abcxdef", "1080 x 1920", "1080x1920x3"}
	for _, c := range invalid {
		err := ValidateCanvasString(c)
		if err == nil {
			t.Errorf("ValidateCanvasString(%q) = nil, want error", c)
			continue
		}
		if !Is(err, ErrCodeInvalidCanvas) {
			t.Errorf("ValidateCanvasString(%q) code = %s, want INVALID_CANVAS", c, GetCode(err))
		}
	}
}

func TestValidateChannel(t *testing.T) {
	for ch := range KnownChannels {
		if err := ValidateChannel(ch); err != nil {
			t.Errorf("ValidateChannel(%q) = %v", ch, err)
		}
	}

	for _, ch := range []string{"", "tiktok", "Stories"} {
		if err := ValidateChannel(ch); err == nil {
			t.Errorf("ValidateChannel(%q) = nil, want error", ch)
		}
	}
}

func TestValidateHexColor(t *testing.T) {
	valid := []string{"#FFFFFF", "#000000", "#fff", "#1a2B3c"}
	for _, c := range valid {
		if err := ValidateHexColor(c); err != nil {
			t.Errorf("ValidateHexColor(%q) = %v", c, err)
		}
	}

	invalid := []string{"", "FFFFFF", "#FFFF", "#GGGGGG", "#12345"}
	for _, c := range invalid {
		if err := ValidateHexColor(c); err == nil {
			t.Errorf("ValidateHexColor(%q) = nil, want error", c)
		}
	}
}

func TestValidateRetailer(t *testing.T) {
	for _, r := range []string{"tesco", "sainsburys", "asda", "co-op"} {
		if err := ValidateRetailer(r); err != nil {
			t.Errorf("ValidateRetailer(%q) = %v", r, err)
		}
	}
	for _, r := range []string{"", "tesco;drop table", "a b"} {
		if err := ValidateRetailer(r); err == nil {
			t.Errorf("ValidateRetailer(%q) = nil, want error", r)
		}
	}
}
