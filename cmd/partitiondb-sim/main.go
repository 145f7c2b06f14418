//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2026 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/entities/partitionkey"
	"github.com/weaviate/partitiondb/usecases/collection"
)

func main() {
	log := logrus.WithFields(logrus.Fields{"app": "partitiondb-sim"}).Logger

	app := &cli.App{
		Name:  "partitiondb-sim",
		Usage: "simulate a split-heavy workload against an in-memory partitioned collection",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "docs",
				Value: 10000,
				Usage: "number of documents to write",
			},
			&cli.IntFlag{
				Name:  "splits",
				Value: 4,
				Usage: "number of partition splits, the largest partition goes first",
			},
			&cli.IntFlag{
				Name:  "keys",
				Value: 64,
				Usage: "number of distinct partition key values in the workload",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "seed for the workload generator",
			},
			&cli.Float64Flag{
				Name:  "missing-rate",
				Value: 0.05,
				Usage: "fraction of documents written without a partition key",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump the final partition report with full detail",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

func run(c *cli.Context, log logrus.FieldLogger) error {
	docs := c.Int("docs")
	splits := c.Int("splits")
	keys := c.Int("keys")
	missingRate := c.Float64("missing-rate")
	if keys < 1 {
		return fmt.Errorf("--keys must be at least 1, got: %d", keys)
	}

	rng := rand.New(rand.NewSource(c.Int64("seed")))
	// zipf-distributed tenants, a few of them stay hot
	tenant := rand.NewZipf(rng, 1.1, 1, uint64(keys-1))

	manager, err := collection.NewManager(
		partitionkey.Definition{Paths: []string{"/tenant"}}, log, nil)
	if err != nil {
		return err
	}

	for i := 0; i < docs; i++ {
		doc := models.Document{"n": i}
		if rng.Float64() >= missingRate {
			doc["tenant"] = fmt.Sprintf("tenant-%d", tenant.Uint64())
		}

		if _, err := manager.CreateItem(doc); err != nil {
			return fmt.Errorf("write document %d: %w", i+1, err)
		}
	}

	for i := 0; i < splits; i++ {
		target := largestPartition(manager.PartitionCounts())
		if err := manager.Split(target); err != nil {
			return fmt.Errorf("split %d of %d: %w", i+1, splits, err)
		}
	}

	result := buildReport(manager, docs)

	fmt.Printf("wrote %d documents across %d partitions after %d splits\n",
		result.Documents, len(result.Partitions), splits)
	for _, stat := range result.Partitions {
		fmt.Printf("partition=%d range=%s records=%d share=%.1f%%\n",
			stat.ID, stat.Range, stat.Records, stat.Share*100)
	}
	fmt.Printf("imbalance max/mean: %.2f\n", result.Imbalance)

	if c.Bool("dump") {
		spew.Dump(result)
	}

	return nil
}

func buildReport(manager *collection.Manager, docs int) report {
	partitions := manager.ListPartitions()
	counts := manager.PartitionCounts()

	ids := make([]uint64, 0, len(partitions))
	for id := range partitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	out := report{Documents: docs}
	max := 0
	for _, id := range ids {
		share := 0.0
		if docs > 0 {
			share = float64(counts[id]) / float64(docs)
		}
		if counts[id] > max {
			max = counts[id]
		}

		out.Partitions = append(out.Partitions, partitionStat{
			ID:      id,
			Range:   partitions[id].String(),
			Records: counts[id],
			Share:   share,
		})
	}

	if len(ids) > 0 && docs > 0 {
		mean := float64(docs) / float64(len(ids))
		out.Imbalance = float64(max) / mean
	}

	return out
}

func largestPartition(counts map[uint64]int) uint64 {
	var id uint64
	best := -1
	for candidate, count := range counts {
		if count > best || (count == best && candidate < id) {
			id, best = candidate, count
		}
	}

	return id
}

type report struct {
	Documents  int
	Imbalance  float64
	Partitions []partitionStat
}

type partitionStat struct {
	ID      uint64
	Range   string
	Records int
	Share   float64
}
