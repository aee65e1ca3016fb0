package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const emailDomain = "example.com"

var (
	firstNames = []string{"João", "Lucas", "Mariana", "Ana", "Carlos", "Fernanda", "Pedro", "Rafaela", "Gustavo", "Beatriz",
		"Marcos", "Patrícia", "Paulo", "Laura", "Ricardo", "Juliana", "Roberto", "Carolina", "Thiago", "Sofia"}
	lastNames       = []string{"Silva", "Souza", "Oliveira", "Santos", "Pereira", "Costa", "Almeida", "Gomes", "Ribeiro", "Martins"}
	roomNames       = []string{"Sala", "Cozinha", "Quarto 1", "Quarto 2", "Banheiro", "Escritório", "Varanda"}
	objectTypes     = []string{"móvel", "eletrônico", "decoração", "utensílio", "eletrodoméstico"}
	objectBaseNames = []string{"Sofá", "Mesa", "Cadeira", "Cama", "Armário", "TV", "Geladeira", "Micro-ondas", "Prateleira", "Tapete"}
	colors          = []string{"azul", "vermelho", "verde", "preto", "branco", "cinza", "marrom", "amarelo", "bege"}
	devices         = []string{"iPhone 12", "iPhone 13", "Pixel 6", "Galaxy S21"}
	fovs            = []int{90, 100, 110, 120}
	voices          = []string{"masculino", "feminino"}
	streets         = []string{"A", "B", "C", "D", "E"}
	dwellings       = []string{"Apartamento", "Casa", "Sobrado"}
)

const (
	noteMoved        = "Objeto movido dentro da residência %s."
	renameSuffix     = " (renomeado)"
	defaultLanguage  = "pt"
	passwordSuffix   = "password"
	emailRetryHexLen = 6
)

var historyNotes = map[models.ActionType]string{
	models.ActionRenamed:      "Nome alterado pelo usuário.",
	models.ActionColorChanged: "Cor atualizada após nova detecção.",
	models.ActionRemoved:      "Objeto removido.",
	models.ActionStatusUpdate: "Atualização de status automática.",
}

// Factory builds documents. It performs no I/O; every random choice comes
// from its rng.
type Factory struct {
	rng          *rand.Rand
	passwordCost int
}

func NewFactory(rng *rand.Rand, passwordCost int) *Factory {
	return &Factory{rng: rng, passwordCost: passwordCost}
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slug lower-cases s and drops accents and spaces: "Patrícia" -> "patricia".
func slug(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.ReplaceAll(out, " ", ""))
}

// seed returns a uuid drawn from the factory rng, used to salt vision hashes.
func (f *Factory) seed() string {
	u, err := uuid.NewRandomFromReader(rngReader{rng: f.rng})
	if err != nil {
		return ""
	}
	return u.String()
}

func (f *Factory) NewUser(index int, createdAt time.Time) (*models.User, error) {
	first, last := pick(f.rng, firstNames), pick(f.rng, lastNames)
	email := fmt.Sprintf("%s.%s%d@%s", slug(first), slug(last), index, emailDomain)

	hash, err := bcrypt.GenerateFromPassword([]byte(email+passwordSuffix), f.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &models.User{
		Name:         first + " " + last,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    createdAt,
		Preferences: models.Preferences{
			Voice:    pick(f.rng, voices),
			Language: defaultLanguage,
		},
	}, nil
}

// AlternateEmail returns the fallback address used when u.Email is taken:
// first.last.<index>.<6 hex>@example.com.
func (f *Factory) AlternateEmail(u *models.User, index int) string {
	parts := strings.Fields(u.Name)
	local := slug(u.Name)
	if len(parts) >= 2 {
		local = slug(parts[0]) + "." + slug(parts[len(parts)-1])
	}
	return fmt.Sprintf("%s.%d.%s@%s", local, index, randomHex(f.rng, emailRetryHexLen), emailDomain)
}

func (f *Factory) NewResidence(userID string, index int, createdAt time.Time) *models.Residence {
	name := pick(f.rng, roomNames)
	if index > 0 {
		name = fmt.Sprintf("%s - %d", name, index+1)
	}
	return &models.Residence{
		UserID:      userID,
		Name:        name,
		Address:     fmt.Sprintf("Rua %s, %d", pick(f.rng, streets), between(f.rng, 1, 999)),
		Description: fmt.Sprintf("%s %d quartos", pick(f.rng, dwellings), between(f.rng, 1, 4)),
		CreatedAt:   createdAt,
		Metadata:    models.ResidenceMetadata{AreaM2: between(f.rng, 30, 250)},
	}
}

func (f *Factory) NewScan(residenceID, userID string, ts time.Time) *models.Scan {
	return &models.Scan{
		ResidenceID: residenceID,
		UserID:      userID,
		Timestamp:   ts,
		CameraMeta: models.CameraMeta{
			Device: pick(f.rng, devices),
			FOV:    pick(f.rng, fovs),
			Position: models.Coordinates{
				X: round3(uniform(f.rng, 0, 4)),
				Y: round3(uniform(f.rng, 0, 4)),
				Z: round3(uniform(f.rng, 0.5, 2.0)),
			},
		},
	}
}

// NewCatalogObject builds the n-th persistent object template of a
// residence. Templates have no scan and no timestamps until sighted or
// materialized.
func (f *Factory) NewCatalogObject(residenceID string, n int) *models.Object {
	name := fmt.Sprintf("%s #%d", pick(f.rng, objectBaseNames), n)
	coords := Jitter(f.rng, models.Coordinates{X: uniform(f.rng, 0, 4), Y: uniform(f.rng, 0, 4)})
	return &models.Object{
		ResidenceID: residenceID,
		Name:        name,
		Type:        pick(f.rng, objectTypes),
		Color:       pick(f.rng, colors),
		Coordinates: coords,
		Status:      models.StatusActive,
		Confidence:  round3(uniform(f.rng, 0.7, 0.99)),
		VisionHash:  VisionHash(name, coords, f.seed()),
	}
}

// NewSighting is a fresh detection of template: same identity and hash,
// re-jittered position.
func (f *Factory) NewSighting(template *models.Object, scanID string, ts time.Time) *models.Object {
	obj := template.Clone()
	obj.ID = ""
	obj.Coordinates = Jitter(f.rng, template.Coordinates)
	obj.ScanID = &scanID
	obj.FirstSeen = ts
	obj.LastSeen = ts
	obj.Status = models.StatusActive
	obj.Confidence = round3(uniform(f.rng, 0.6, 0.99))
	return obj
}

// NewTransientObject is an object seen only by scan scanIndex, with a hash
// that matches nothing else.
func (f *Factory) NewTransientObject(residenceID, scanID string, scanIndex int, ts time.Time) *models.Object {
	name := fmt.Sprintf("%s (scan%d)", pick(f.rng, objectBaseNames), scanIndex+1)
	coords := Jitter(f.rng, models.Coordinates{
		X: uniform(f.rng, 0, 4),
		Y: uniform(f.rng, 0, 4),
		Z: uniform(f.rng, 0, 1),
	})
	return &models.Object{
		ResidenceID: residenceID,
		Name:        name,
		Type:        pick(f.rng, objectTypes),
		Color:       pick(f.rng, colors),
		Coordinates: coords,
		ScanID:      &scanID,
		FirstSeen:   ts,
		LastSeen:    ts,
		Status:      models.StatusActive,
		Confidence:  round3(uniform(f.rng, 0.5, 0.98)),
		VisionHash:  VisionHash(name, coords, f.seed()),
	}
}

// Materialize turns a never-sighted template into a document seen at `at`.
func (f *Factory) Materialize(template *models.Object, at time.Time) *models.Object {
	obj := template.Clone()
	obj.ID = ""
	obj.ScanID = nil
	obj.FirstSeen = at
	obj.LastSeen = at
	return obj
}

func (f *Factory) NewHistoryEntry(objectID, actor string, kind models.ActionType, ts time.Time) *models.HistoryEntry {
	return &models.HistoryEntry{
		ObjectID:    objectID,
		ActionType:  kind,
		PerformedBy: actor,
		Timestamp:   ts,
		Notes:       historyNotes[kind],
	}
}

// OtherColor picks a color different from current.
func (f *Factory) OtherColor(current string) string {
	options := make([]string, 0, len(colors))
	for _, c := range colors {
		if c != current {
			options = append(options, c)
		}
	}
	return pick(f.rng, options)
}
