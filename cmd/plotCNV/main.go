package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"cnvplot/pkg/config"
	"cnvplot/pkg/plot"
	"cnvplot/pkg/report"
	"cnvplot/pkg/track"
)

// flag
var (
	configFile = flag.String(
		"config",
		"",
		"optional render parameter file (yaml), see pkg/config for defaults",
	)
	summary = flag.Bool(
		"summary",
		true,
		"write summary.txt and summary.xlsx next to the plots",
	)
)

const usage = `usage: plotCNV [flags] <mode> <BAF-file> <LRR-file> [<region-file>] <output-dir>
  mode       genome_plot | region_plot
  BAF-file   gzip tab table with header: Chr Start End BAF
  LRR-file   gzip tab table with header: Chr Start End LRR
  region-file  tab table without header: Chr Start End Type (region_plot only)`

func main() {
	version.LogVersion()
	flag.Parse()

	args := flag.Args()
	if len(args) < 4 {
		flag.PrintDefaults()
		log.Fatal(usage)
	}

	var (
		mode       = args[0]
		bafFile    = args[1]
		lrrFile    = args[2]
		regionFile string
		outDir     string
	)
	switch mode {
	case "genome_plot":
		// a region file, if given, is ignored
		outDir = args[len(args)-1]
	case "region_plot":
		if len(args) < 5 {
			flag.PrintDefaults()
			log.Fatal(usage)
		}
		regionFile = args[3]
		outDir = args[4]
	default:
		log.Fatalf("unknown mode %q\n%s", mode, usage)
	}

	cfg := simpleUtil.HandleError(config.Load(*configFile))
	simpleUtil.CheckErr(os.MkdirAll(outDir, 0755))

	baf := simpleUtil.HandleError(track.LoadTrack(bafFile))
	lrr := simpleUtil.HandleError(track.LoadTrack(lrrFile))
	slog.Info("tracks loaded", "baf", len(baf.Points), "lrr", len(lrr.Points))

	switch mode {
	case "genome_plot":
		simpleUtil.CheckErr(plot.Genome(lrr, baf, cfg, outDir))
		if *summary {
			simpleUtil.CheckErr(report.Write(filepath.Join(outDir, "summary"), report.GenomeRows(lrr, baf)))
		}
	case "region_plot":
		regions, err := track.LoadRegions(regionFile)
		if err != nil {
			slog.Info("skip region plotting", "regions", regionFile, "err", err)
			return
		}
		if len(regions) == 0 {
			slog.Info("skip region plotting", "regions", regionFile, "reason", "no regions")
			return
		}
		plot.Regions(lrr, baf, regions, cfg, outDir)
		if *summary {
			simpleUtil.CheckErr(report.Write(filepath.Join(outDir, "summary"), report.RegionRows(lrr, baf, regions, cfg.Window.PaddingFloor)))
		}
	}
}
