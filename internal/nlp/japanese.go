package nlp

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// japaneseEngine wraps the kagome morphological analyzer with the IPA
// dictionary. Lemmas come from dictionary base forms; sentence boundaries
// are split on Japanese terminators; entities are runs of proper-noun
// (固有名詞) tokens, since the analyzer has no dedicated NER layer.
type japaneseEngine struct {
	tokenizer *tokenizer.Tokenizer
}

func newJapaneseEngine() (Engine, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &japaneseEngine{tokenizer: t}, nil
}

// Analyze runs the full Japanese pipeline over text.
func (e *japaneseEngine) Analyze(text string) (*Doc, error) {
	if strings.TrimSpace(text) == "" {
		return &Doc{}, nil
	}

	morphemes := e.tokenizer.Tokenize(text)
	tokens := make([]Token, 0, len(morphemes))
	for _, m := range morphemes {
		lemma := m.Surface
		if base, ok := m.BaseForm(); ok && base != "*" {
			lemma = base
		}
		tokens = append(tokens, Token{
			Text:  m.Surface,
			Lemma: lemma,
			POS:   coarseIPATag(m.POS()),
		})
	}

	return &Doc{
		Tokens:    tokens,
		Sentences: splitJapaneseSentences(text),
		Entities:  properNounRuns(tokens),
	}, nil
}

// coarseIPATag maps IPA dictionary POS features to the shared coarse tagset.
func coarseIPATag(features []string) string {
	if len(features) == 0 {
		return PosOther
	}
	switch features[0] {
	case "形容詞", "形容動詞":
		return PosAdjective
	case "名詞":
		if len(features) > 1 && features[1] == "固有名詞" {
			return PosProperNoun
		}
		return PosNoun
	case "動詞":
		return PosVerb
	default:
		return PosOther
	}
}

// splitJapaneseSentences splits on 。！？ and their ASCII equivalents.
func splitJapaneseSentences(text string) []Sentence {
	var sentences []Sentence
	var current strings.Builder

	flush := func() {
		sent := strings.TrimSpace(current.String())
		if sent != "" {
			sentences = append(sentences, Sentence{Text: sent})
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		switch r {
		case '。', '！', '？', '!', '?', '\n':
			flush()
		}
	}
	flush()

	return sentences
}

// properNounRuns joins consecutive proper-noun tokens into entity strings.
func properNounRuns(tokens []Token) []string {
	var entities []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			entities = append(entities, run.String())
			run.Reset()
		}
	}

	for _, tok := range tokens {
		if tok.POS == PosProperNoun {
			run.WriteString(tok.Text)
			continue
		}
		flush()
	}
	flush()

	return entities
}
