// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package textutil

import (
	"fmt"
	"strings"
)

// Stopword language identifiers accepted by StopwordSet.
const (
	StopwordsEnglish = "english"
	StopwordsFrench  = "french"
	StopwordsNone    = "none"
)

// StopwordSet returns the folded stopword set for a language.
// An empty language selects English.
func StopwordSet(language string) (map[string]struct{}, error) {
	var words string
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", StopwordsEnglish:
		words = englishStopwords
	case StopwordsFrench:
		words = frenchStopwords
	case StopwordsNone:
		return map[string]struct{}{}, nil
	default:
		return nil, fmt.Errorf("unknown stopword language %q", language)
	}
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[Fold(w)] = struct{}{}
	}
	return set, nil
}

// RemoveStopwords drops tokens present in stop, preserving order.
func RemoveStopwords(tokens []string, stop map[string]struct{}) []string {
	if len(stop) == 0 {
		return tokens
	}
	out := tokens[:0:0]
	for _, t := range tokens {
		if _, ok := stop[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

const englishStopwords = `
a about above across after afterwards again against all almost alone along
already also although always am among amongst amoungst amount an and another
any anyhow anyone anything anyway anywhere are around as at back be became
because become becomes becoming been before beforehand behind being below
beside besides between beyond bill both bottom but by call can cannot cant co
con could couldnt cry de describe detail do done down due during each eg eight
either eleven else elsewhere empty enough etc even ever every everyone
everything everywhere except few fifteen fifty fill find fire first five for
former formerly forty found four from front full further get give go had has
hasnt have he hence her here hereafter hereby herein hereupon hers herself him
himself his how however hundred i ie if in inc indeed interest into is it its
itself keep last latter latterly least less ltd made many may me meanwhile
might mill mine more moreover most mostly move much must my myself name namely
neither never nevertheless next nine no nobody none noone nor not nothing now
nowhere of off often on once one only onto or other others otherwise our ours
ourselves out over own part per perhaps please put rather re same see seem
seemed seeming seems serious several she should show side since sincere six
sixty so some somehow someone something sometime sometimes somewhere still
such system take ten than that the their them themselves then thence there
thereafter thereby therefore therein thereupon these they thick thin third
this those though three through throughout thru thus to together too top
toward towards twelve twenty two un under until up upon us very via was we
well were what whatever when whence whenever where whereafter whereas whereby
wherein whereupon wherever whether which while whither who whoever whole whom
whose why will with within without would yet you your yours yourself
yourselves
`

const frenchStopwords = `
au aux avec ce ces dans de des du elle en et eux il ils je la le les leur lui
ma mais me meme mes moi mon ne nos notre nous on ou par pas pour qu que qui sa
se ses son sur ta te tes toi ton tu un une vos votre vous c d j l m n s t y
ete etee etees etes etant suis es est sommes sont serai sera serons seront
serais serait serions seraient etais etait etions etaient fus fut fumes furent
sois soit soyons soient ai as avons avez ont aurai aura aurons auront aurais
aurait aurions auraient avais avait avions avaient eu eue eues eus eut eumes
eurent aie aies ait ayons ayez aient cette cet son sans sous entre vers chez
plus tres tout tous toute toutes alors aussi bien comme donc dont ici la lors
peu puis quand si deja encore
`
