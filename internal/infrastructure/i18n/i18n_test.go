package i18n

import (
	"slices"
	"sync"
	"testing"
	"testing/fstest"
)

// testLocales cria arquivos de locale em memória para testes
func testLocales() fstest.MapFS {
	return fstest.MapFS{
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "employee.created": "Funcionário criado com sucesso",
  "error.employee_not_found": "Funcionário não encontrado",
  "error.not_found.detail": "A rota {{.Path}} não existe"
}`)},
		"en.json": &fstest.MapFile{Data: []byte(`{
  "employee.created": "Employee created successfully",
  "error.employee_not_found": "Employee not found",
  "error.not_found.detail": "Route {{.Path}} does not exist"
}`)},
		"es.json": &fstest.MapFile{Data: []byte(`{
  "employee.created": "Empleado creado exitosamente"
}`)},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewService(testLocales(), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.DefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve '%s'", service.DefaultLanguage())
		}

		want := []string{"pt-BR", "en", "es"}
		if got := service.Languages(); !slices.Equal(got, want) {
			t.Errorf("esperava idiomas %v, obteve %v", want, got)
		}
	})

	t.Run("Languages devolve uma cópia", func(t *testing.T) {
		service, err := NewService(testLocales(), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		langs := service.Languages()
		langs[0] = "xx"
		if service.Languages()[0] != "pt-BR" {
			t.Error("alterar o slice retornado não deveria afetar o serviço")
		}
	})

	t.Run("erro quando template da mensagem é inválido", func(t *testing.T) {
		fsys := fstest.MapFS{"pt-BR.json": &fstest.MapFile{Data: []byte(`{"quebrada": "rota {{.Path"}`)}}
		_, err := NewService(fsys, "pt-BR")
		if err == nil {
			t.Error("esperava erro de template, obteve sucesso")
		}
	})

	t.Run("erro quando não há arquivos de locale", func(t *testing.T) {
		_, err := NewService(fstest.MapFS{}, "pt-BR")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		_, err := NewService(testLocales(), "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})

	t.Run("erro quando arquivo é JSON inválido", func(t *testing.T) {
		fsys := fstest.MapFS{"pt-BR.json": &fstest.MapFile{Data: []byte(`{`)}}
		_, err := NewService(fsys, "pt-BR")
		if err == nil {
			t.Error("esperava erro de parse, obteve sucesso")
		}
	})

	t.Run("locales embutidos possuem as mesmas chaves", func(t *testing.T) {
		service, err := NewService(Locales(), "pt-BR")
		if err != nil {
			t.Fatalf("falha ao carregar locales embutidos: %v", err)
		}

		for key := range service.catalogs["pt-BR"] {
			if _, ok := service.catalogs["en"][key]; !ok {
				t.Errorf("chave '%s' ausente em en.json", key)
			}
		}
		if got := service.T("pt-BR", "error.user_already_exists"); got != "Usuário já cadastrado com este CPF" {
			t.Errorf("tradução inesperada: '%s'", got)
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(testLocales(), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "employee.created")
		expected := "Funcionário criado com sucesso"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "employee.created")
		expected := "Employee created successfully"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem com parâmetros", func(t *testing.T) {
		result := service.T("en", "error.not_found.detail", map[string]interface{}{"Path": "/x"})
		expected := "Route /x does not exist"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando chave não existe no idioma solicitado", func(t *testing.T) {
		result := service.T("es", "error.employee_not_found")
		expected := "Funcionário não encontrado"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("mensagem com template sem parâmetros retorna o texto cru", func(t *testing.T) {
		result := service.T("en", "error.not_found.detail")
		expected := "Route {{.Path}} does not exist"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna chave quando tradução não existe", func(t *testing.T) {
		result := service.T("pt-BR", "chave.inexistente")
		expected := "chave.inexistente"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})
}

func TestService_Supports(t *testing.T) {
	service, err := NewService(testLocales(), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", true},
		{"fr", false},
		{"pt", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.Supports(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	service, err := NewService(testLocales(), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.not_found.detail", map[string]interface{}{"Path": "/"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "employee.created")
		}()

		go func() {
			defer wg.Done()
			_ = service.Supports("en")
		}()
	}

	wg.Wait()
}
