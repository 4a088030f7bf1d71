// skillcheck компилирует каталог определений скилов и печатает сводку.
// Удобен для проверки правок данных без запуска сервера.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/teralith/interlude/internal/data"
	"github.com/teralith/interlude/internal/game/skill"
)

func main() {
	dir := flag.String("dir", "data/stats/skills", "skill definitions directory")
	id := flag.Int("id", 0, "print one skill id after compiling")
	level := flag.Int("level", 1, "level to print with -id")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	skills := data.NewSkillData(skill.DefaultRegistry(), data.DefaultEnchantSkillGroups())
	if err := skills.Load(context.Background(), *dir); err != nil {
		fmt.Fprintln(os.Stderr, "load failed:", err)
		os.Exit(1)
	}
	fmt.Printf("compiled %d level records\n", skills.Count())
	if n := skills.Dropped(); n > 0 {
		fmt.Fprintf(os.Stderr, "%d definitions dropped, see log\n", n)
		os.Exit(1)
	}

	if *id == 0 {
		return
	}
	sk, err := skills.Skill(*id, *level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("skill %d (%s) level %d\n", sk.ID, sk.Name, sk.Level)
	fmt.Printf("  max level:   %d\n", skills.MaxLevel(sk.ID))
	fmt.Printf("  enchantable: %v\n", skills.IsEnchantable(sk.ID))
	fmt.Printf("  passive:     %v\n", sk.IsPassive())
	fmt.Printf("  conditions:  %d\n", len(sk.PreConditions))
	for _, scope := range skill.Scopes() {
		effs := sk.Effects(scope)
		funcs := sk.Funcs(scope)
		if len(effs) == 0 && len(funcs) == 0 {
			continue
		}
		fmt.Printf("  %s: %d effects, %d funcs\n", scope, len(effs), len(funcs))
	}
	for _, key := range sk.Set.Keys() {
		fmt.Printf("    %s = %s\n", key, sk.Set.String(key, ""))
	}
}
