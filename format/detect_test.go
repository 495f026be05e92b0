package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		expect   Format
	}{
		{"shot.png", PNG},
		{"shot.PNG", PNG},
		{"photo.jpg", JPEG},
		{"photo.jpeg", JPEG},
		{"scan.bmp", BMP},
		{"scan.tiff", TIFF},
		{"scan.tif", TIFF},
		{"web.webp", WebP},
		{"doc.pdf", Unknown},
		{"noext", Unknown},
		{"", Unknown},
		{"dir/archive.tar.png", PNG},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.expect {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.expect)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		expect Format
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}, PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0, 0, 0, 0, 0}, JPEG},
		{"bmp", append([]byte("BM"), make([]byte, 10)...), BMP},
		{"tiff little endian", append([]byte{'I', 'I', 0x2A, 0x00}, make([]byte, 8)...), TIFF},
		{"tiff big endian", append([]byte{'M', 'M', 0x00, 0x2A}, make([]byte, 8)...), TIFF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), WebP},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVE"), Unknown},
		{"too short", []byte{0x89, 'P'}, Unknown},
		{"empty", nil, Unknown},
		{"text", []byte("hello world!"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.expect {
				t.Errorf("DetectFromMagic = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestFormatStringExtensionMIME(t *testing.T) {
	tests := []struct {
		f    Format
		str  string
		ext  string
		mime string
	}{
		{PNG, "PNG", ".png", "image/png"},
		{JPEG, "JPEG", ".jpg", "image/jpeg"},
		{BMP, "BMP", ".bmp", "image/bmp"},
		{TIFF, "TIFF", ".tiff", "image/tiff"},
		{WebP, "WebP", ".webp", "image/webp"},
		{Unknown, "Unknown", "", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.str {
			t.Errorf("%v.String() = %q, want %q", tt.f, got, tt.str)
		}
		if got := tt.f.Extension(); got != tt.ext {
			t.Errorf("%v.Extension() = %q, want %q", tt.f, got, tt.ext)
		}
		if got := tt.f.MIMEType(); got != tt.mime {
			t.Errorf("%v.MIMEType() = %q, want %q", tt.f, got, tt.mime)
		}
	}
}

func TestIsSupported(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if !IsSupported(png) {
		t.Error("expected png bytes to be supported")
	}
	if IsSupported([]byte("plain text, not an image")) {
		t.Error("expected text bytes to be rejected")
	}
}
