package cmd

import (
	"github.com/etnz/folio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the fol command line for shell completion.
func Completion() *complete.Command {
	dates := predict.Something
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger": predict.Files("*.json*"),
			"path":   predict.Something,
			"style":  predict.Set{"auto", "dark", "light", "notty", "raw"},
		},
		Sub: map[string]*complete.Command{
			"updates": {
				Flags: map[string]complete.Predictor{
					"h":    predict.Something,
					"s":    dates,
					"d":    dates,
					"json": predict.Nothing,
					"o":    predict.Files("*.json"),
				},
			},
			"balances": {
				Flags: map[string]complete.Predictor{"d": dates},
			},
			"check": {},
			"fmt": {
				Flags: map[string]complete.Predictor{"w": predict.Nothing},
			},
			"topic":    {Args: predict.Set(append(topics, "*"))},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
