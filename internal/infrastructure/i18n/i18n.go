package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Locales retorna os arquivos de tradução embutidos no binário
func Locales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err) // o diretório é embutido em tempo de compilação
	}
	return sub
}

// message guarda o texto cru e, quando há interpolação, o template já compilado
type message struct {
	text string
	tmpl *template.Template
}

func (m message) render(params map[string]interface{}) string {
	if m.tmpl == nil || params == nil {
		return m.text
	}
	var b strings.Builder
	if err := m.tmpl.Execute(&b, params); err != nil {
		return m.text
	}
	return b.String()
}

type catalog map[string]message

// Service resolve message IDs para textos traduzidos.
// Os catálogos são montados uma única vez em NewService e nunca mudam depois,
// então o Service pode ser compartilhado entre goroutines sem lock.
type Service struct {
	catalogs        map[string]catalog
	defaultLanguage string
	languages       []string
}

// NewService carrega um catálogo por arquivo <idioma>.json na raiz de fsys.
// defaultLang precisa estar entre os arquivos e é usado como fallback.
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		catalogs:        make(map[string]catalog, len(files)),
		defaultLanguage: defaultLang,
	}
	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")
		cat, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = cat
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	s.languages = make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		if lang != defaultLang {
			s.languages = append(s.languages, lang)
		}
	}
	sort.Strings(s.languages)
	s.languages = append([]string{defaultLang}, s.languages...)

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (catalog, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	cat := make(catalog, len(raw))
	for id, text := range raw {
		msg := message{text: text}
		if strings.Contains(text, "{{") {
			tmpl, err := template.New(id).Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid message %q in %s: %w", id, file, err)
			}
			msg.tmpl = tmpl
		}
		cat[id] = msg
	}
	return cat, nil
}

// T traduz um message ID. Parâmetros opcionais preenchem campos como {{.Path}}.
// Sem tradução no idioma pedido usa o idioma padrão; sem nenhuma, devolve o próprio ID.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.catalogs[lang][key]
	if !ok {
		msg, ok = s.catalogs[s.defaultLanguage][key]
	}
	if !ok {
		return key
	}

	var p map[string]interface{}
	if len(params) > 0 {
		p = params[0]
	}
	return msg.render(p)
}

// DefaultLanguage retorna o idioma de fallback
func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

// Languages retorna os idiomas carregados: o padrão primeiro, os demais em ordem alfabética.
// O slice retornado é uma cópia.
func (s *Service) Languages() []string {
	return append([]string(nil), s.languages...)
}

// Supports informa se existe um catálogo para lang
func (s *Service) Supports(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
