package furikana

import (
	"errors"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/furikana/morphology"
)

func tokyo(plugins PluginResolver) *Token {
	return NewToken(ipa("東京", "名詞", "固有名詞", "", "", "東京", "トウキョウ", "トーキョー"), plugins)
}

func TestNewToken(t *testing.T) {
	tests := []struct {
		fields morphology.MorphologyToken
		want   Fields
	}{
		{
			fields: ipa("東京", "名詞", "固有名詞", "", "", "東京", "トウキョウ", "トーキョー"),
			want: Fields{
				Word:          "東京",
				Lemma:         "東京",
				Reading:       "トウキョウ",
				Pronunciation: "トーキョー",
				PartOfSpeech:  ProperNoun,
			},
		},
		{
			// 未知語は表層形で埋める
			fields: morphology.MorphologyToken{morphology.Literal: "Ishiuchi"},
			want: Fields{
				Word:          "Ishiuchi",
				Lemma:         "Ishiuchi",
				Reading:       "Ishiuchi",
				Pronunciation: "Ishiuchi",
			},
		},
		{
			fields: morphology.MorphologyToken{morphology.Literal: "は", morphology.Reading: "ハ", morphology.Grammar: "topic"},
			want: Fields{
				Word:          "は",
				Lemma:         "は",
				Reading:       "ハ",
				Pronunciation: "ハ",
				Grammar:       "topic",
			},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("fields = %v, want = %v", tt.fields, tt.want), func(t *testing.T) {
			if diff := cmp.Diff(NewToken(tt.fields, nil).Fields(), tt.want); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestTokenRawFieldsAreImmutable(t *testing.T) {
	fields := ipa("東京", "名詞", "固有名詞", "", "", "東京", "トウキョウ", "トーキョー")
	token := NewToken(fields, nil)

	fields[morphology.Reading] = "ヒガシキョウ"
	token.SetReading("とうきょう")
	token.RawFields()[morphology.Reading] = "ニシキョウ"

	got, err := token.Field(morphology.Reading)
	if err != nil {
		t.Fatal(err)
	}
	if got != "トウキョウ" {
		t.Errorf("Field() = %v, want %v", got, "トウキョウ")
	}
	if token.Reading() != "とうきょう" {
		t.Errorf("Reading() = %v, want %v", token.Reading(), "とうきょう")
	}

	_, err = token.Field("conjugation")
	var notFound *FieldNotFoundError
	if !errors.As(err, &notFound) || notFound.Field != "conjugation" {
		t.Errorf("Field() error = %v, want FieldNotFoundError", err)
	}
}

func TestTokenAppendTo(t *testing.T) {
	token := tokyo(nil)
	for i := 0; i < 2; i++ {
		if err := token.AppendTo("word", "さん"); err != nil {
			t.Fatal(err)
		}
	}
	if token.Word() != "東京さんさん" {
		t.Errorf("Word() = %v, want %v", token.Word(), "東京さんさん")
	}

	var invalid *InvalidAttributeError
	if err := token.AppendTo("grammar", "past"); !errors.As(err, &invalid) {
		t.Errorf("AppendTo() on unset grammar error = %v, want InvalidAttributeError", err)
	}
	if err := token.AppendTo("kana", "x"); !errors.As(err, &invalid) || invalid.Attribute != "kana" {
		t.Errorf("AppendTo() error = %v, want InvalidAttributeError", err)
	}

	token.SetGrammar("polite")
	if err := token.AppendTo("grammar", " past"); err != nil {
		t.Fatal(err)
	}
	if g, _ := token.Grammar(); g != "polite past" {
		t.Errorf("Grammar() = %v, want %v", g, "polite past")
	}
}

func TestTokenGetSet(t *testing.T) {
	token := tokyo(nil)

	g, err := token.Get("grammar")
	if err != nil || g != "" {
		t.Errorf("Get(grammar) = %v, %v, want empty", g, err)
	}
	if _, ok := token.Grammar(); ok {
		t.Error("Grammar() ok = true, want false")
	}

	if err := token.Set("partOfSpeech", Noun); err != nil {
		t.Fatal(err)
	}
	if got, _ := token.Get("partOfSpeech"); got != Noun {
		t.Errorf("Get(partOfSpeech) = %v, want %v", got, Noun)
	}

	if _, err := token.Get("surface"); err == nil {
		t.Error("Get(surface) error = nil")
	}

	token.SetGrammar("name")
	token.ClearGrammar()
	if _, ok := token.Grammar(); ok {
		t.Error("Grammar() ok = true after ClearGrammar")
	}
}

func TestTokenPluginValue(t *testing.T) {
	registry := NewPluginRegistry("")
	token := tokyo(registry)

	_, err := token.PluginValue("X")
	var notFound *PluginNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("PluginValue() error = %v, want PluginNotFoundError", err)
	}
	if diff := cmp.Diff(*notFound, PluginNotFoundError{Plugin: "X", Source: DefaultPluginSource}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	registry.Register("X", PluginFunc(func(Fields) (interface{}, error) {
		return "v", nil
	}))
	got, err := token.PluginValue("X")
	if err != nil {
		t.Fatal(err)
	}
	if got != "v" {
		t.Errorf("PluginValue() = %v, want %v", got, "v")
	}
}

func TestTokenPluginValueIsCached(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockPlugin := NewMockPlugin(mockCtrl)

	// Given
	registry := NewPluginRegistry("")
	registry.Register("Mock", mockPlugin)
	token := tokyo(registry)
	mockPlugin.EXPECT().Apply(token.Fields()).Return(1, nil).Times(1)

	// When
	token.PluginValue("Mock")
	token.SetWord("とうきょう")
	got, err := token.PluginValue("Mock")

	// Then
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("PluginValue() = %v, want %v", got, 1)
	}
}

func TestTokenSetPluginData(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockPlugin := NewMockPlugin(mockCtrl)

	// Given
	registry := NewPluginRegistry("")
	registry.Register("Mock", mockPlugin)
	token := tokyo(registry)
	mockPlugin.EXPECT().Apply(gomock.Any()).Times(0)

	// When
	token.SetPluginData("Mock", 42)
	converted := token.ToHiragana()

	// Then
	for _, tk := range []*Token{token, converted} {
		got, err := tk.PluginValue("Mock")
		if err != nil {
			t.Fatal(err)
		}
		if got != 42 {
			t.Errorf("PluginValue() = %v, want %v", got, 42)
		}
	}
}

func TestTokenConversionRecomputesPlugins(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockPlugin := NewMockPlugin(mockCtrl)

	// Given
	registry := NewPluginRegistry("")
	registry.Register("Mock", mockPlugin)
	token := tokyo(registry)
	mockPlugin.EXPECT().Apply(gomock.Any()).DoAndReturn(func(f Fields) (interface{}, error) {
		return f.Word, nil
	}).Times(2)

	// When
	before, _ := token.PluginValue("Mock")
	after, _ := token.ToHiragana().PluginValue("Mock")

	// Then
	if before != "東京" || after != "とうきょう" {
		t.Errorf("PluginValue() = %v then %v, want 東京 then とうきょう", before, after)
	}
}

func TestTokenPluginError(t *testing.T) {
	boom := errors.New("boom")
	registry := NewPluginRegistry("")
	registry.Register("Broken", PluginFunc(func(Fields) (interface{}, error) {
		return nil, boom
	}))
	_, err := tokyo(registry).PluginValue("Broken")
	if !errors.Is(err, boom) {
		t.Errorf("PluginValue() error = %v, want %v", err, boom)
	}
}

func TestTokenConversions(t *testing.T) {
	tests := []struct {
		name    string
		convert func(*Token) *Token
		want    Fields
	}{
		{
			name:    "hiragana",
			convert: (*Token).ToHiragana,
			want: Fields{
				Word:          "とうきょう",
				Lemma:         "とうきょう",
				Reading:       "とうきょう",
				Pronunciation: "とーきょー",
				PartOfSpeech:  ProperNoun,
			},
		},
		{
			name:    "katakana",
			convert: (*Token).ToKatakana,
			want: Fields{
				Word:          "トウキョウ",
				Lemma:         "トウキョウ",
				Reading:       "トウキョウ",
				Pronunciation: "トーキョー",
				PartOfSpeech:  ProperNoun,
			},
		},
		{
			name:    "romaji",
			convert: (*Token).ToRomanization,
			want: Fields{
				Word:          "toukyou",
				Lemma:         "toukyou",
				Reading:       "toukyou",
				Pronunciation: "tookyoo",
				PartOfSpeech:  ProperNoun,
			},
		},
		{
			name:    "furigana",
			convert: (*Token).ToFurigana,
			want: Fields{
				Word:          "<ruby><rb>東京</rb><rp>(</rp><rt>とうきょう</rt><rp>)</rp></ruby>",
				Lemma:         "<ruby><rb>東京</rb><rp>(</rp><rt>とうきょう</rt><rp>)</rp></ruby>",
				Reading:       "トウキョウ",
				Pronunciation: "トーキョー",
				PartOfSpeech:  ProperNoun,
			},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("name = %v, want = %v", tt.name, tt.want), func(t *testing.T) {
			token := tokyo(nil)
			converted := tt.convert(token)
			if diff := cmp.Diff(converted.Fields(), tt.want); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
			if token.Word() != "東京" {
				t.Errorf("original Word() = %v, want 東京", token.Word())
			}
			if converted.String() != "東京("+tt.want.Word+")" {
				t.Errorf("String() = %v", converted.String())
			}
		})
	}
}

func TestTokenRomanizeParticle(t *testing.T) {
	token := NewToken(ipa("は", "助詞", "係助詞", "", "", "は", "ハ", "ワ"), nil)
	if got := token.ToRomanization().Word(); got != "wa" {
		t.Errorf("ToRomanization().Word() = %v, want %v", got, "wa")
	}
	if got := token.ToRomanizationWith(NewHepburn(true)).Reading(); got != "ha" {
		t.Errorf("ToRomanizationWith().Reading() = %v, want %v", got, "ha")
	}
}

func TestTokenJoinedLemma(t *testing.T) {
	records := sentenceRecords()[7:11]
	tokens := NewAuxiliaryJoinFilter().Filter(newTokens(records, nil))
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %v, want 1", len(tokens))
	}
	token := tokens[0]

	furigana := token.ToFurigana()
	if want := "<ruby><rb>食</rb><rp>(</rp><rt>た</rt><rp>)</rp></ruby>べてしまった"; furigana.Word() != want {
		t.Errorf("ToFurigana().Word() = %v, want %v", furigana.Word(), want)
	}
	if want := "<ruby><rb>食</rb><rp>(</rp><rt>た</rt><rp>)</rp></ruby>べる"; furigana.Lemma() != want {
		t.Errorf("ToFurigana().Lemma() = %v, want %v", furigana.Lemma(), want)
	}

	hiragana := token.ToHiragana()
	if hiragana.Word() != "たべてしまった" || hiragana.Lemma() != "たべる" {
		t.Errorf("ToHiragana() = %v / %v, want たべてしまった / たべる", hiragana.Word(), hiragana.Lemma())
	}

	if got := len(token.Morphemes()); got != 4 {
		t.Errorf("len(Morphemes()) = %v, want 4", got)
	}
	if got, _ := token.Field(morphology.Literal); got != "食べ" {
		t.Errorf("Field(literal) = %v, want 食べ", got)
	}
}
