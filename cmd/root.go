package cmd

import (
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "settrainer",
	Short: "Practice spotting sets in the card game Set",
	Long: `Settrainer is a command-line trainer for the card game Set.
It deals two cards and asks for the card that completes the set, or deals a
spread and asks you to find a set in it.

Cards are written in shorthand, one code per attribute, in any order:
  number   1 2 3
  color    r(ed) p(urple) g(reen)
  shape    o(val) d(iamond) w(ave)
  pattern  f(illed) s(triped) e(mpty)
For example "2spd" or "2,s,p,d" is 2 striped purple diamonds.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().Int64("seed", 0, "Seed for the random source (0 uses the config seed, then the clock)")
	RootCmd.PersistentFlags().String("color", "", "Color mode: auto, none, basic or truecolor (default from config)")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	RootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer klog.Flush()
	return RootCmd.Execute()
}
