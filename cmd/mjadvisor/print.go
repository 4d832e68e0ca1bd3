package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_advisor/mahjong"
	"github.com/kevin-chtw/tw_advisor/service"
)

func shantenColor(shanten int) color.Attribute {
	switch {
	case shanten <= mahjong.ShantenWin:
		return color.FgHiRed
	case shanten == mahjong.ShantenTing:
		return color.FgHiGreen
	case shanten <= 2:
		return color.FgHiYellow
	default:
		return color.FgHiWhite
	}
}

func printAck(w io.Writer, ack *service.AnalyzeAck) {
	fmt.Fprintf(w, "规则: %s  手牌: %s", ack.Rule, ack.Hand)
	if ack.Laizi != "" {
		fmt.Fprintf(w, "  癞子: ")
		color.New(color.FgHiMagenta).Fprint(w, ack.Laizi)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "当前: ")
	color.New(shantenColor(ack.Shanten)).Fprintln(w, shantenText(ack.Shanten))

	for i, s := range ack.Suggestions {
		fmt.Fprintf(w, "%d. ", i+1)
		switch s.Kind {
		case mahjong.SuggestionDeclare:
			color.New(color.FgHiYellow, color.Bold).Fprintf(w, "%s", s.Discard)
		case mahjong.SuggestionWin:
			color.New(color.FgHiRed, color.Bold).Fprintf(w, "%s", s.Discard)
		default:
			color.New(shantenColor(s.Shanten)).Fprintf(w, "打%s", s.Discard)
		}
		fmt.Fprintf(w, "  %d  %s", s.Score, s.Comment)
		if len(s.WaitingTiles) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(s.WaitingTiles, " "))
		}
		fmt.Fprintln(w)
	}
}

func shantenText(shanten int) string {
	switch shanten {
	case mahjong.ShantenWin:
		return "和了"
	case mahjong.ShantenTing:
		return "听牌"
	default:
		return fmt.Sprintf("%d 向听", shanten)
	}
}
