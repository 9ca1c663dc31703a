package usecase

import "testing"

func TestIsLoginTitle(t *testing.T) {
	testCases := []struct {
		title string
		want  bool
	}{
		{"Faça login para continuar", true},
		{"Login | Shopee Brasil", true},
		{"Sign in to your account", true},
		{"Entrar - Mercado Livre", true},
		{"Tênis Esportivo Azul Tamanho 42", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			if got := IsLoginTitle(tc.title); got != tc.want {
				t.Errorf("IsLoginTitle(%q) = %v, want %v", tc.title, got, tc.want)
			}
		})
	}
}

func TestTitleFromMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "first heading",
			markdown: "# Tênis Esportivo Azul Tamanho 42\n\nDescrição do produto",
			want:     "Tênis Esportivo Azul Tamanho 42",
		},
		{
			name:     "second level heading",
			markdown: "texto solto\n## Smartphone Galaxy S24 Ultra\nmais texto",
			want:     "Smartphone Galaxy S24 Ultra",
		},
		{
			name:     "login heading is rejected",
			markdown: "# Faça login para continuar\n## Produto Interessante",
			want:     "",
		},
		{
			name:     "too-short heading is rejected",
			markdown: "# Oi\ntexto",
			want:     "",
		},
		{
			name:     "h4 is not considered",
			markdown: "#### Detalhes do Produto",
			want:     "",
		},
		{
			name:     "no headings",
			markdown: "apenas texto corrido sem estrutura",
			want:     "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TitleFromMarkdown(tc.markdown); got != tc.want {
				t.Errorf("TitleFromMarkdown() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestImageFromMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "prefers image with real extension",
			markdown: "![logo](https://cdn.example.com/logo.svg) ![produto](https://cdn.example.com/produto.jpg)",
			want:     "https://cdn.example.com/produto.jpg",
		},
		{
			name:     "webp with query string",
			markdown: "![foto](https://cdn.example.com/img/abc.webp?w=800)",
			want:     "https://cdn.example.com/img/abc.webp?w=800",
		},
		{
			name:     "falls back to any non-icon image",
			markdown: "![foto](https://cdn.example.com/render/12345)",
			want:     "https://cdn.example.com/render/12345",
		},
		{
			name:     "icon-looking fallback is rejected",
			markdown: "![x](https://cdn.example.com/assets/icon-cart)",
			want:     "",
		},
		{
			name:     "logo-looking fallback is rejected",
			markdown: "![x](https://cdn.example.com/brand/logo-header)",
			want:     "",
		},
		{
			name:     "no images",
			markdown: "texto sem imagem nenhuma",
			want:     "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImageFromMarkdown(tc.markdown); got != tc.want {
				t.Errorf("ImageFromMarkdown() = %q, want %q", got, tc.want)
			}
		})
	}
}
