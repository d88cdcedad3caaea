package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	clip     = newClipValue(geometry.NewRect(0, 0, 1000, 1000))
	random   = kingpin.Flag("random", "Сгенерировать N случайных сайтов вместо чтения stdin.").Int()
	grid     = kingpin.Flag("grid", "Сгенерировать N сайтов на равномерной сетке.").Int()
	seed     = kingpin.Flag("seed", "Зерно генератора для --random (по умолчанию текущее время).").Int64()
	validate = kingpin.Flag("validate", "Проверить оба разбиения и соответствие граней сайтам.").Bool()
	verbose  = kingpin.Flag("verbose", "Отладочный журнал в stderr.").Short('v').Bool()
	noColor  = kingpin.Flag("no-color", "Без цвета в выводе.").Bool()
)

func main() {
	kingpin.Flag("clip", "Прямоугольник отсечения minX,minY,maxX,maxY.").SetValue(clip)
	kingpin.CommandLine.HelpFlag.Short('h')
	kingpin.Parse()

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewWriter(os.Stderr, level, !*noColor)
	defer log.Sync()

	sites, err := loadSites(os.Stdin, clip.rect)
	if err != nil {
		log.Error("Ошибка чтения сайтов", zap.Error(err))
		os.Exit(1)
	}
	log.Debug("Сайты загружены", zap.Int("count", len(sites)), zap.Stringer("clip", clip.rect))

	res, err := voronoi.FindAll(sites, clip.rect, voronoi.WithLogger(log))
	if err != nil {
		log.Error("Ошибка построения диаграммы", zap.Error(err))
		os.Exit(1)
	}

	au := aurora.NewAurora(!*noColor)
	printResults(os.Stdout, au, res)

	if *validate {
		if err := validateResults(res); err != nil {
			fmt.Fprintln(os.Stdout, au.Red("validation failed:"), err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stdout, au.Green("validation ok"))
	}
}

func loadSites(stdin io.Reader, bounds geometry.Rect) ([]geometry.Point, error) {
	switch {
	case *random > 0 && *grid > 0:
		return nil, errors.New("--random and --grid are mutually exclusive")
	case *random > 0:
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		return geometry.RandomPoints(rand.New(rand.NewSource(s)), *random, bounds), nil
	case *grid > 0:
		return gridSites(*grid, bounds), nil
	}
	return readSites(stdin)
}

func validateResults(res *voronoi.Results) error {
	if _, err := res.ToDelaunaySubdivision(true); err != nil {
		return err
	}
	m, err := voronoi.NewFaceSiteMap(res)
	if err != nil {
		return err
	}
	return m.Source().Validate()
}

func printResults(w io.Writer, au aurora.Aurora, res *voronoi.Results) {
	sites := res.GeneratorSites()
	empty := 0
	for i, region := range res.VoronoiRegions() {
		fmt.Fprintf(w, "%s %d %v:", au.Cyan("site"), i, sites[i])
		if len(region) == 0 {
			empty++
			fmt.Fprintln(w, au.Yellow(" empty"))
			continue
		}
		for _, p := range region {
			fmt.Fprintf(w, " %v", p)
		}
		fmt.Fprintln(w)
	}

	edges := res.DelaunayEdges()
	for _, e := range edges {
		fmt.Fprintf(w, "%s %v\n", au.Green("delaunay"), e)
	}
	fmt.Fprintf(w, "%s sites=%d empty=%d delaunay=%d voronoi=%d clip=%v\n",
		au.Bold("summary"), res.Len(), empty, len(edges), len(res.VoronoiEdges()), res.ClippingBounds())
}
