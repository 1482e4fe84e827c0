// Package catalog loads the read-only tables the generator draws from:
// names, towns, professions, weapons, armor, kits and distinguishing
// features.
package catalog

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/dg-generator/internal/catalog Catalog

//go:embed data/*.yaml
var embedded embed.FS

// Data file names inside a catalog directory
const (
	FileNames       = "names.yaml"
	FileProfessions = "professions.yaml"
	FileWeapons     = "weapons.yaml"
	FileArmor       = "armor.yaml"
	FileKits        = "kits.yaml"
	FileFeatures    = "features.yaml"
)

// Catalog is the read-only lookup surface used during generation
type Catalog interface {
	// Profession finds a profession by id or, case-insensitively, by label.
	// Returns errors.NotFound for unknown professions.
	Profession(idOrLabel string) (*deltagreen.Profession, error)

	// Professions lists every profession in file order
	Professions() []*deltagreen.Profession

	// Weapon, Armor and Kit return errors.NotFound for unknown ids
	Weapon(id string) (*deltagreen.WeaponDefinition, error)
	Armor(id string) (*deltagreen.ArmorDefinition, error)
	Kit(id string) (*deltagreen.Kit, error)

	GivenNames(sex deltagreen.Sex) []string
	Surnames() []string
	Towns() []string

	// Features lists candidate phrases for an attribute score, if any
	Features(attr deltagreen.Attribute, value int) []string
}

type namesFile struct {
	Male     []string `yaml:"male"`
	Female   []string `yaml:"female"`
	Surnames []string `yaml:"surnames"`
	Towns    []string `yaml:"towns"`
}

// Store is the in-memory Catalog implementation
type Store struct {
	names       namesFile
	professions []*deltagreen.Profession
	byID        map[string]*deltagreen.Profession
	weapons     map[string]*deltagreen.WeaponDefinition
	armor       map[string]*deltagreen.ArmorDefinition
	kits        map[string]*deltagreen.Kit
	features    map[deltagreen.Attribute]map[int][]string
}

var _ Catalog = (*Store)(nil)

// LoadEmbedded loads the catalog compiled into the binary
func LoadEmbedded() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return Load(sub)
}

// LoadDir loads a catalog from a directory on disk
func LoadDir(dir string) (*Store, error) {
	return Load(os.DirFS(dir))
}

// Load reads every catalog file from fsys
func Load(fsys fs.FS) (*Store, error) {
	var names namesFile
	if err := readYAML(fsys, FileNames, &names); err != nil {
		return nil, err
	}

	var professions []*deltagreen.Profession
	if err := readYAML(fsys, FileProfessions, &professions); err != nil {
		return nil, err
	}

	var weapons []*deltagreen.WeaponDefinition
	if err := readYAML(fsys, FileWeapons, &weapons); err != nil {
		return nil, err
	}

	var armor []*deltagreen.ArmorDefinition
	if err := readYAML(fsys, FileArmor, &armor); err != nil {
		return nil, err
	}

	var kits []*deltagreen.Kit
	if err := readYAML(fsys, FileKits, &kits); err != nil {
		return nil, err
	}

	var features map[deltagreen.Attribute]map[int][]string
	if err := readYAML(fsys, FileFeatures, &features); err != nil {
		return nil, err
	}

	return New(&Config{
		Male:        names.Male,
		Female:      names.Female,
		Surnames:    names.Surnames,
		Towns:       names.Towns,
		Professions: professions,
		Weapons:     weapons,
		Armor:       armor,
		Kits:        kits,
		Features:    features,
	})
}

// Config carries already-parsed catalog tables
type Config struct {
	Male        []string
	Female      []string
	Surnames    []string
	Towns       []string
	Professions []*deltagreen.Profession
	Weapons     []*deltagreen.WeaponDefinition
	Armor       []*deltagreen.ArmorDefinition
	Kits        []*deltagreen.Kit
	Features    map[deltagreen.Attribute]map[int][]string
}

// Validate checks the tables for missing and duplicate identifiers
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Male) == 0 {
		vb.RequiredField("names.male")
	}
	if len(c.Female) == 0 {
		vb.RequiredField("names.female")
	}
	if len(c.Surnames) == 0 {
		vb.RequiredField("names.surnames")
	}
	if len(c.Towns) == 0 {
		vb.RequiredField("names.towns")
	}

	seen := map[string]bool{}
	for i, p := range c.Professions {
		switch {
		case p == nil || p.ID == "":
			vb.Fieldf("professions", "entry %d has no id", i)
		case p.Label == "":
			vb.Fieldf("professions", "%s has no label", p.ID)
		case seen[p.ID]:
			vb.Fieldf("professions", "duplicate id %s", p.ID)
		default:
			seen[p.ID] = true
		}
	}

	for i, w := range c.Weapons {
		if w == nil || w.ID == "" || w.Name == "" {
			vb.Fieldf("weapons", "entry %d needs an id and a name", i)
		}
	}
	for i, a := range c.Armor {
		if a == nil || a.ID == "" {
			vb.Fieldf("armor", "entry %d has no id", i)
		}
	}
	for i, k := range c.Kits {
		if k == nil || k.ID == "" {
			vb.Fieldf("kits", "entry %d has no id", i)
		}
	}

	return vb.Build()
}

// Unresolved lists kit, weapon and armor references that name no catalog
// entry, in file order. They are not fatal: generation skips them.
func (c *Config) Unresolved() []string {
	weapons := make(map[string]bool, len(c.Weapons))
	for _, w := range c.Weapons {
		if w != nil {
			weapons[w.ID] = true
		}
	}
	armor := make(map[string]bool, len(c.Armor))
	for _, a := range c.Armor {
		if a != nil {
			armor[a.ID] = true
		}
	}
	kits := make(map[string]bool, len(c.Kits))
	for _, k := range c.Kits {
		if k != nil {
			kits[k.ID] = true
		}
	}

	var refs []string
	for _, p := range c.Professions {
		if p != nil && p.EquipmentKit != "" && !kits[p.EquipmentKit] {
			refs = append(refs, "profession "+p.ID+" kit "+p.EquipmentKit)
		}
	}

	var walk func(kitID string, entries []deltagreen.WeaponEntry)
	walk = func(kitID string, entries []deltagreen.WeaponEntry) {
		for _, e := range entries {
			if e.Type != "" && !weapons[e.Type] {
				refs = append(refs, "kit "+kitID+" weapon "+e.Type)
			}
			walk(kitID, e.OneOf)
			walk(kitID, e.Both)
		}
	}
	for _, k := range c.Kits {
		if k == nil {
			continue
		}
		walk(k.ID, k.Weapons)
		for _, a := range k.Armor {
			if !armor[a.Type] {
				refs = append(refs, "kit "+k.ID+" armor "+a.Type)
			}
		}
	}
	return refs
}

// New builds a Store from parsed tables
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	s := &Store{
		names: namesFile{
			Male:     cfg.Male,
			Female:   cfg.Female,
			Surnames: cfg.Surnames,
			Towns:    cfg.Towns,
		},
		professions: cfg.Professions,
		byID:        make(map[string]*deltagreen.Profession, len(cfg.Professions)),
		weapons:     make(map[string]*deltagreen.WeaponDefinition, len(cfg.Weapons)),
		armor:       make(map[string]*deltagreen.ArmorDefinition, len(cfg.Armor)),
		kits:        make(map[string]*deltagreen.Kit, len(cfg.Kits)),
		features:    cfg.Features,
	}
	for _, p := range cfg.Professions {
		s.byID[p.ID] = p
	}
	for _, w := range cfg.Weapons {
		s.weapons[w.ID] = w
	}
	for _, a := range cfg.Armor {
		s.armor[a.ID] = a
	}
	for _, k := range cfg.Kits {
		s.kits[k.ID] = k
	}

	for _, ref := range cfg.Unresolved() {
		slog.Warn("Catalog reference does not resolve, generation will skip it",
			"reference", ref,
		)
	}

	return s, nil
}

// Profession finds a profession by id or label
func (s *Store) Profession(idOrLabel string) (*deltagreen.Profession, error) {
	if p, ok := s.byID[idOrLabel]; ok {
		return p, nil
	}
	for _, p := range s.professions {
		if strings.EqualFold(p.Label, idOrLabel) {
			return p, nil
		}
	}
	return nil, errors.NotFoundf("profession %q not found", idOrLabel).
		WithMeta("profession", idOrLabel)
}

// Professions lists every profession in file order
func (s *Store) Professions() []*deltagreen.Profession {
	return append([]*deltagreen.Profession(nil), s.professions...)
}

// Weapon returns a weapon definition
func (s *Store) Weapon(id string) (*deltagreen.WeaponDefinition, error) {
	if w, ok := s.weapons[id]; ok {
		return w, nil
	}
	return nil, errors.NotFoundf("weapon %q not found", id).WithMeta("weapon", id)
}

// Armor returns an armor definition
func (s *Store) Armor(id string) (*deltagreen.ArmorDefinition, error) {
	if a, ok := s.armor[id]; ok {
		return a, nil
	}
	return nil, errors.NotFoundf("armor %q not found", id).WithMeta("armor", id)
}

// Kit returns an equipment kit
func (s *Store) Kit(id string) (*deltagreen.Kit, error) {
	if k, ok := s.kits[id]; ok {
		return k, nil
	}
	return nil, errors.NotFoundf("kit %q not found", id).WithMeta("kit", id)
}

// GivenNames returns the given-name list for sex
func (s *Store) GivenNames(sex deltagreen.Sex) []string {
	if sex == deltagreen.SexFemale {
		return s.names.Female
	}
	return s.names.Male
}

// Surnames returns the surname list
func (s *Store) Surnames() []string {
	return s.names.Surnames
}

// Towns returns the town list
func (s *Store) Towns() []string {
	return s.names.Towns
}

// Features returns the phrases for an attribute score
func (s *Store) Features(attr deltagreen.Attribute, value int) []string {
	return s.features[attr][value]
}

func readYAML(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "failed to read "+name)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+name)
	}
	return nil
}
