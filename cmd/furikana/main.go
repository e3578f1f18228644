package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/cihub/seelog"
	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/furikana"
	"github.com/kotaroooo0/furikana/morphology"
)

func main() {
	fs := flag.NewFlagSet("furikana", flag.ExitOnError)
	verbosity := fs.Int("v", 0, "Be verbose [1, 2, 3]")
	dictionary := fs.String("dict", string(morphology.IPA), "Dictionary [ipa, uni, neologd]")
	romanization := fs.String("romaji", furikana.RomanizationHepburn, "Romanization [hepburn, hepburn-macron, hebon]")
	to := fs.String("to", "furigana", "Output [hiragana, katakana, romaji, furigana]")
	dump := fs.Bool("dump", false, "Dump every token")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: furikana [flags] text\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	if err := run(strings.Join(fs.Args(), " "), *dictionary, *romanization, *to, *dump, *verbosity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(text, dictionary, romanization, to string, dump bool, verbosity int) error {
	if err := furikana.SetupLogging(verbosity); err != nil {
		return err
	}
	d, err := morphology.ParseDictionary(dictionary)
	if err != nil {
		return err
	}
	p, err := furikana.New(furikana.NewConfig(
		furikana.WithDictionary(d),
		furikana.WithRomanization(romanization),
	))
	if err != nil {
		return err
	}
	defer log.Flush()

	rs := p.Parse(text)
	switch to {
	case "hiragana":
		rs = rs.ToHiragana()
	case "katakana":
		rs = rs.ToKatakana()
	case "romaji":
		rs = rs.ToRomanizationWith(p.Romanizer())
	case "furigana":
		rs = rs.ToFurigana()
	default:
		return fmt.Errorf("unknown output %q", to)
	}

	if dump {
		for _, t := range rs.Tokens() {
			g, _ := t.Grammar()
			pp.Println(map[string]interface{}{
				"morphemes": t.Morphemes(),
				"word":      t.Word(),
				"lemma":     t.Lemma(),
				"reading":   t.Reading(),
				"pos":       t.PartOfSpeech(),
				"grammar":   g,
			})
		}
	}
	words, err := rs.Pluck("word")
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(words, " "))
	return nil
}
