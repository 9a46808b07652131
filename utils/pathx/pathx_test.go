package pathx

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{`a\b\\c`, "a/b/c"},
		{"//a///b/", "/a/b/"},
		{"./a/../b", "./a/../b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"a", "b", "c.txt"}, "a/b/c.txt"},
		{[]string{"/root/", "", "/x"}, "/root/x"},
		{[]string{`dir\sub`, "f"}, "dir/sub/f"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Join(tt.parts...); got != tt.want {
			t.Errorf("Join(%q) = %q; want %q", tt.parts, got, tt.want)
		}
	}
}

func TestBasenameDirnameExtname(t *testing.T) {
	tests := []struct {
		in             string
		base, dir, ext string
	}{
		{"/usr/lib/file.tar.gz", "file.tar.gz", "/usr/lib", ".gz"},
		{`C:\docs\readme`, "readme", "C:/docs", ""},
		{"file.txt", "file.txt", ".", ".txt"},
		{"/etc", "etc", "/", ""},
		{"/home/.bashrc", ".bashrc", "/home", ""},
		{"a/b/", "", "a/b", ""},
		{"", "", ".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Basename(tt.in); got != tt.base {
				t.Errorf("Basename = %q; want %q", got, tt.base)
			}
			if got := Dirname(tt.in); got != tt.dir {
				t.Errorf("Dirname = %q; want %q", got, tt.dir)
			}
			if got := Extname(tt.in); got != tt.ext {
				t.Errorf("Extname = %q; want %q", got, tt.ext)
			}
		})
	}
}
