package filestorage

import "testing"

func TestAllowedVideoExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"lecture1.mp4", true},
		{"lecture1.MP4", true},
		{"intro.mov", true},
		{"intro.avi", true},
		{"intro.mkv", true},
		{"notes.txt", false},
		{"script.mp4.exe", false},
		{"noextension", false},
		{"trailingdot.", false},
		{"", false},
		{".mp4", true},
	}

	for _, tt := range tests {
		if got := AllowedVideoExtension(tt.filename); got != tt.want {
			t.Errorf("AllowedVideoExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"lecture1.mp4", "lecture1.mp4"},
		{"my lecture.mp4", "my_lecture.mp4"},
		{"../../etc/passwd.mp4", "etc_passwd.mp4"},
		{"..\\..\\windows\\system32.mov", "windows_system32.mov"},
		{"wéird çhars!.mkv", "wird_hars.mkv"},
		{"...", "upload"},
		{"", "upload"},
		{"__name__.avi", "name__.avi"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.name); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
