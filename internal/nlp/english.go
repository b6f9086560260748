package nlp

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// englishEngine wraps prose (tokenization, Penn Treebank POS tagging,
// sentence segmentation, NER) and golem (dictionary lemmatization).
type englishEngine struct {
	lemmatizer *golem.Lemmatizer
}

func newEnglishEngine() (Engine, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &englishEngine{lemmatizer: lemmatizer}, nil
}

// Analyze runs the full English pipeline over text.
func (e *englishEngine) Analyze(text string) (*Doc, error) {
	if strings.TrimSpace(text) == "" {
		return &Doc{}, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		lower := strings.ToLower(tok.Text)
		tokens = append(tokens, Token{
			Text:  tok.Text,
			Lemma: strings.ToLower(e.lemmatizer.Lemma(lower)),
			POS:   coarsePennTag(tok.Tag),
		})
	}

	proseSents := doc.Sentences()
	sentences := make([]Sentence, 0, len(proseSents))
	for _, sent := range proseSents {
		sentences = append(sentences, Sentence{Text: sent.Text})
	}

	var entities []string
	for _, ent := range doc.Entities() {
		entities = append(entities, ent.Text)
	}

	return &Doc{
		Tokens:    tokens,
		Sentences: sentences,
		Entities:  entities,
	}, nil
}

// coarsePennTag maps Penn Treebank tags to the shared coarse tagset.
func coarsePennTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "JJ"):
		return PosAdjective
	case strings.HasPrefix(tag, "NNP"):
		return PosProperNoun
	case strings.HasPrefix(tag, "NN"):
		return PosNoun
	case strings.HasPrefix(tag, "VB"):
		return PosVerb
	default:
		return PosOther
	}
}
