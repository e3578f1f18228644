package furikana

import "strings"

// Segment is a span of an orthographic form. Ruby holds the hiragana reading
// of a kanji span and is empty for spans rendered verbatim.
type Segment struct {
	Text string
	Ruby string
}

type RubyFormatter interface {
	Format(base, ruby string) string
}

// HTMLRuby renders <ruby><rb>食</rb><rp>(</rp><rt>た</rt><rp>)</rp></ruby>.
type HTMLRuby struct{}

func (HTMLRuby) Format(base, ruby string) string {
	return "<ruby><rb>" + base + "</rb><rp>(</rp><rt>" + ruby + "</rt><rp>)</rp></ruby>"
}

// BracketRuby renders [食|た].
type BracketRuby struct{}

func (BracketRuby) Format(base, ruby string) string {
	return "[" + base + "|" + ruby + "]"
}

// Furigana annotates the kanji spans of orthographic with their part of reading.
func Furigana(orthographic, reading string) string {
	return FuriganaWith(HTMLRuby{}, orthographic, reading)
}

func FuriganaWith(f RubyFormatter, orthographic, reading string) string {
	return render(f, Align(orthographic, reading))
}

func render(f RubyFormatter, segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Ruby == "" {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(f.Format(s.Text, s.Ruby))
	}
	return b.String()
}

// phonetic replaces every annotated span by its reading.
func phonetic(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Ruby == "" {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(s.Ruby)
	}
	return b.String()
}

type run struct {
	text  []rune
	kanji bool
}

// splitRuns segments s into alternating kanji and non-kanji runs.
func splitRuns(s string) []run {
	var runs []run
	for _, r := range s {
		k := IsKanji(r)
		if n := len(runs); n > 0 && runs[n-1].kanji == k {
			runs[n-1].text = append(runs[n-1].text, r)
			continue
		}
		runs = append(runs, run{text: []rune{r}, kanji: k})
	}
	return runs
}

// Align splits reading over the kanji runs of orthographic. The kana already
// written in orthographic anchor the reading; what lies between two anchors
// belongs to the kanji run between them. A run of several kanji keeps one block.
// When the anchors do not fit the reading the whole form gets the whole reading.
func Align(orthographic, reading string) []Segment {
	if !ContainsKanji(orthographic) || reading == "" || ContainsKanji(reading) {
		return []Segment{{Text: orthographic}}
	}
	ph := []rune(ToHiragana(reading))
	segments, ok := anchor(splitRuns(orthographic), ph)
	if !ok {
		return []Segment{{Text: orthographic, Ruby: string(ph)}}
	}
	return segments
}

func anchor(runs []run, ph []rune) ([]Segment, bool) {
	segments := make([]Segment, len(runs))
	cursor := 0
	pending := -1
	for i, r := range runs {
		segments[i] = Segment{Text: string(r.text)}
		if r.kanji {
			pending = i
			continue
		}

		literal := []rune(ToHiragana(string(r.text)))
		var at int
		switch {
		case pending < 0:
			at = cursor
			if !matchAt(ph, literal, at) {
				return nil, false
			}
		case i == len(runs)-1:
			at = len(ph) - len(literal)
			if at < cursor+1 || !matchAt(ph, literal, at) {
				return nil, false
			}
		default:
			at = indexFrom(ph, literal, cursor+1)
			if at < 0 || ambiguous(ph, literal, at, runs[i+1:]) {
				return nil, false
			}
		}

		if pending >= 0 {
			segments[pending].Ruby = string(ph[cursor:at])
			pending = -1
		}
		cursor = at + len(literal)
	}

	if pending >= 0 {
		if cursor >= len(ph) {
			return nil, false
		}
		segments[pending].Ruby = string(ph[cursor:])
		cursor = len(ph)
	}
	return segments, cursor == len(ph)
}

// ambiguous reports whether literal could also anchor after at while leaving
// enough of the reading for the runs that follow. 物の怪/もののけ splits either way.
func ambiguous(ph, literal []rune, at int, rest []run) bool {
	need := 0
	for _, r := range rest {
		if r.kanji {
			need++
			continue
		}
		need += len(r.text)
	}
	next := indexFrom(ph, literal, at+1)
	return next >= 0 && next+len(literal)+need <= len(ph)
}

func matchAt(s, sub []rune, at int) bool {
	if at < 0 || at+len(sub) > len(s) {
		return false
	}
	for i, r := range sub {
		if s[at+i] != r {
			return false
		}
	}
	return true
}

func indexFrom(s, sub []rune, from int) int {
	for at := from; at+len(sub) <= len(s); at++ {
		if matchAt(s, sub, at) {
			return at
		}
	}
	return -1
}

// kanjiReadings collects the reading given to each kanji run of an alignment.
func kanjiReadings(segments []Segment) map[string]string {
	known := make(map[string]string)
	for _, s := range segments {
		if s.Ruby != "" && !strings.ContainsFunc(s.Text, IsKana) {
			known[s.Text] = s.Ruby
		}
	}
	return known
}

// realign annotates the kanji runs of orthographic with readings already known
// from another alignment, e.g. the lemma 食べる from the word 食べて.
func realign(orthographic string, known map[string]string) ([]Segment, bool) {
	runs := splitRuns(orthographic)
	segments := make([]Segment, len(runs))
	for i, r := range runs {
		segments[i] = Segment{Text: string(r.text)}
		if !r.kanji {
			continue
		}
		ruby, ok := known[string(r.text)]
		if !ok {
			return nil, false
		}
		segments[i].Ruby = ruby
	}
	return segments, true
}
