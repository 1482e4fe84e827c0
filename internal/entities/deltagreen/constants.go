package deltagreen

// Sex values
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Attribute names
const (
	Strength     Attribute = "strength"
	Constitution Attribute = "constitution"
	Dexterity    Attribute = "dexterity"
	Intelligence Attribute = "intelligence"
	Power        Attribute = "power"
	Charisma     Attribute = "charisma"
)

// Skill names referenced directly by the generator
const (
	SkillOccult        = "occult"
	SkillUnnatural     = "unnatural"
	SkillUnarmedCombat = "unarmed combat"
)

// Generation limits
const (
	// BaseAge is the age at which veterancy starts earning skill checks
	BaseAge = 25

	// DefaultMinAge and DefaultMaxAge bound the random age
	DefaultMinAge = 24
	DefaultMaxAge = 55

	// MaxCharacterAge is the oldest age a caller may ask for
	MaxCharacterAge = 120

	// BonusSkillCount is how many +20 boosts a new character receives
	BonusSkillCount = 8

	// BonusSkillLimit caps a skill raised through bonus allocation
	BonusSkillLimit = 80

	// BonusSkillBoost is the amount each bonus allocation adds
	BonusSkillBoost = 20

	// SuggestedBonusChance is the percent chance a profession's suggested
	// bonus skill enters the candidate queue
	SuggestedBonusChance = 75

	// MaxWeaponSlots and MaxGearLines are the sheet's capacity
	MaxWeaponSlots = 7
	MaxGearLines   = 22

	// MaxFootnoteLines is the height of the footnote block
	MaxFootnoteLines = 12

	// MaxDamageLines is the number of narrative slots for trauma
	MaxDamageLines = 4

	// GearLineWidth and FootnoteLineWidth are wrap columns
	GearLineWidth     = 55
	FootnoteLineWidth = 95
)

// Months used for birthdays
var Months = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// AllAttributes in sheet order
var AllAttributes = []Attribute{Strength, Constitution, Dexterity, Intelligence, Power, Charisma}

// PhysicalAttributes decline with age
var PhysicalAttributes = []Attribute{Strength, Constitution, Dexterity}

// StatPools are the fixed attribute arrays a character may draw
var StatPools = [][]int{
	{13, 13, 12, 12, 11, 11},
	{15, 14, 12, 11, 10, 10},
	{17, 14, 13, 10, 10, 8},
}

// DefaultSkills returns the baseline skill map every character starts with
func DefaultSkills() Skills {
	return Skills{
		"accounting":      Score(10),
		"alertness":       Score(20),
		"athletics":       Score(30),
		"bureaucracy":     Score(10),
		"criminology":     Score(10),
		"disguise":        Score(10),
		"dodge":           Score(30),
		"drive":           Score(20),
		"firearms":        Score(20),
		"first aid":       Score(10),
		"heavy machinery": Score(10),
		"history":         Score(10),
		"humint":          Score(10),
		"melee weapons":   Score(30),
		"navigate":        Score(10),
		"occult":          Score(10),
		"persuade":        Score(20),
		"psychotherapy":   Score(10),
		"ride":            Score(10),
		"search":          Score(20),
		"stealth":         Score(10),
		"survival":        Score(10),
		"swim":            Score(20),
		"unarmed combat":  Score(40),
	}
}

// BonusSkillPool is the generic list of skills bonus points may land on
var BonusSkillPool = []string{
	"accounting",
	"alertness",
	"anthropology",
	"archeology",
	"art1value",
	"artillery",
	"athletics",
	"bureaucracy",
	"computer science",
	"craft1value",
	"criminology",
	"demolitions",
	"disguise",
	"dodge",
	"drive",
	"firearms",
	"first aid",
	"forensics",
	"heavy machinery",
	"heavy weapons",
	"history",
	"humint",
	"language1",
	"law",
	"medicine",
	"melee weapons",
	"military science1value",
	"navigate",
	"occult",
	"persuade",
	"pharmacy",
	"pilot1value",
	"psychotherapy",
	"ride",
	"science1value",
	"search",
	"sigint",
	"stealth",
	"surgery",
	"survival",
	"swim",
	"unarmed combat",
}

// Disorders a character may carry away from the unnatural
var Disorders = []string{
	"Amnesia",
	"Depersonalization Disorder",
	"Depression",
	"Dissociative Identity Disorder",
	"Fugue",
	"Megalomania",
	"Obsessive-Compulsive Disorder",
	"Paranoia",
	"Post-Traumatic Stress Disorder",
	"Sleep Disorder",
}
