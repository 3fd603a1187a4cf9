package conjugation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInfinitive is returned for words that cannot be conjugated because
// they do not end in -ar, -er, or -ir.
var ErrNotInfinitive = errors.New("conjugation: not an infinitive")

// Tense identifies a conjugation tense.
type Tense string

const (
	Present   Tense = "present"
	Preterite Tense = "preterite"
	Imperfect Tense = "imperfect"
	Future    Tense = "future"
)

// Tenses lists the supported tenses in table order.
var Tenses = []Tense{Present, Preterite, Imperfect, Future}

// Persons lists the grammatical persons in table order.
var Persons = [6]string{
	"yo",
	"tú",
	"él/ella/usted",
	"nosotros",
	"vosotros",
	"ellos/ellas/ustedes",
}

// Conjugation holds the six forms of one verb in one tense.
type Conjugation struct {
	Tense Tense
	Forms [6]string
}

// Table holds the full conjugation of a verb across the supported tenses.
type Table struct {
	Infinitive   string
	Conjugations []Conjugation
}

// Endings for regular verbs, keyed by tense then verb class suffix.
// Future-tense endings attach to the whole infinitive, the others to the stem.
var regularEndings = map[Tense]map[string][6]string{
	Present: {
		"ar": {"o", "as", "a", "amos", "áis", "an"},
		"er": {"o", "es", "e", "emos", "éis", "en"},
		"ir": {"o", "es", "e", "imos", "ís", "en"},
	},
	Preterite: {
		"ar": {"é", "aste", "ó", "amos", "asteis", "aron"},
		"er": {"í", "iste", "ió", "imos", "isteis", "ieron"},
		"ir": {"í", "iste", "ió", "imos", "isteis", "ieron"},
	},
	Imperfect: {
		"ar": {"aba", "abas", "aba", "ábamos", "abais", "aban"},
		"er": {"ía", "ías", "ía", "íamos", "íais", "ían"},
		"ir": {"ía", "ías", "ía", "íamos", "íais", "ían"},
	},
	Future: {
		"ar": {"é", "ás", "á", "emos", "éis", "án"},
		"er": {"é", "ás", "á", "emos", "éis", "án"},
		"ir": {"é", "ás", "á", "emos", "éis", "án"},
	},
}

// Full-form overrides for high-frequency irregular verbs. Tenses not listed
// here fall back to the regular pattern (e.g. hacía, estaba).
var irregulars = map[string]map[Tense][6]string{
	"ser": {
		Present:   {"soy", "eres", "es", "somos", "sois", "son"},
		Preterite: {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		Imperfect: {"era", "eras", "era", "éramos", "erais", "eran"},
	},
	"estar": {
		Present:   {"estoy", "estás", "está", "estamos", "estáis", "están"},
		Preterite: {"estuve", "estuviste", "estuvo", "estuvimos", "estuvisteis", "estuvieron"},
	},
	"ir": {
		Present:   {"voy", "vas", "va", "vamos", "vais", "van"},
		Preterite: {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		Imperfect: {"iba", "ibas", "iba", "íbamos", "ibais", "iban"},
		Future:    {"iré", "irás", "irá", "iremos", "iréis", "irán"},
	},
	"tener": {
		Present:   {"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen"},
		Preterite: {"tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron"},
		Future:    {"tendré", "tendrás", "tendrá", "tendremos", "tendréis", "tendrán"},
	},
	"oír": {
		Present:   {"oigo", "oyes", "oye", "oímos", "oís", "oyen"},
		Preterite: {"oí", "oíste", "oyó", "oímos", "oísteis", "oyeron"},
	},
	"hacer": {
		Present:   {"hago", "haces", "hace", "hacemos", "hacéis", "hacen"},
		Preterite: {"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"},
		Future:    {"haré", "harás", "hará", "haremos", "haréis", "harán"},
	},
}

// Conjugate builds the conjugation table for an infinitive across all
// supported tenses. Returns ErrNotInfinitive for words that do not end in
// -ar, -er, or -ir.
func Conjugate(infinitive string) (*Table, error) {
	verb := strings.ToLower(strings.TrimSpace(infinitive))
	runes := []rune(verb)
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrNotInfinitive, infinitive)
	}

	suffix := string(runes[len(runes)-2:])
	if suffix == "ír" {
		// oír, reír and friends conjugate as -ir verbs.
		suffix = "ir"
	}
	if suffix != "ar" && suffix != "er" && suffix != "ir" {
		return nil, fmt.Errorf("%w: %q", ErrNotInfinitive, infinitive)
	}
	stem := string(runes[:len(runes)-2])

	table := &Table{Infinitive: verb}
	for _, tense := range Tenses {
		table.Conjugations = append(table.Conjugations, Conjugation{
			Tense: tense,
			Forms: conjugateTense(verb, stem, suffix, tense),
		})
	}
	return table, nil
}

// Forms returns the six forms of the verb in the given tense, or false if
// the tense is not part of the table.
func (t *Table) Forms(tense Tense) ([6]string, bool) {
	for _, c := range t.Conjugations {
		if c.Tense == tense {
			return c.Forms, true
		}
	}
	return [6]string{}, false
}

func conjugateTense(verb, stem, suffix string, tense Tense) [6]string {
	if overrides, ok := irregulars[verb]; ok {
		if forms, ok := overrides[tense]; ok {
			return forms
		}
	}

	endings := regularEndings[tense][suffix]

	// The future tense builds on the whole infinitive.
	base := stem
	if tense == Future {
		base = verb
	}

	var forms [6]string
	for i, ending := range endings {
		forms[i] = base + ending
	}
	return forms
}
