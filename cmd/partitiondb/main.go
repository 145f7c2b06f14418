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
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/weaviate/partitiondb/entities/hashrange"
	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/entities/partitionkey"
	"github.com/weaviate/partitiondb/usecases/collection"
	"github.com/weaviate/partitiondb/usecases/sharding"
)

func main() {
	var opts Options
	log := logrus.WithFields(logrus.Fields{"app": "partitiondb"}).Logger

	_, err := flags.Parse(&opts)
	if err != nil {
		log.Fatal("failed to parse command line args", err)
	}

	def, err := loadDefinition(opts.Config)
	if err != nil {
		log.Fatal("failed to load the partition key definition: ", err)
	}

	switch opts.Target {
	case "route":
		if err := runRoute(opts, def); err != nil {
			log.Fatal(err)
		}

	case "load":
		if err := runLoad(opts, def, log); err != nil {
			log.Fatal(err)
		}

	case "feed":
		if err := runFeed(opts, def, log); err != nil {
			log.Fatal(err)
		}

	default:
		log.Fatal("--target empty or unknown")
	}
}

// runRoute explains routing without storing anything: it projects each
// input document onto an even partitioning of the hash space and prints
// where the document would land.
func runRoute(opts Options, def partitionkey.Definition) error {
	ranges, err := hashrange.EvenSplit(hashrange.FullRange(), opts.Partitions)
	if err != nil {
		return fmt.Errorf("partition the hash space: %w", err)
	}

	input, closeInput, err := openInput(opts.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	hasher := sharding.NewMurmur3Hasher()

	return eachLine(input, func(line []byte) error {
		value, err := partitionkey.ExtractFromJSON(line, def)
		if err != nil {
			return fmt.Errorf("extract partition key: %w", err)
		}

		hash, err := hasher.Hash(value)
		if err != nil {
			return fmt.Errorf("hash partition key: %w", err)
		}

		for i, r := range ranges {
			if !r.Contains(hash) {
				continue
			}

			if opts.JSON {
				return printJSON(routeResult{
					Partition: i,
					Range:     r,
					Hash:      hash,
					Key:       value.String(),
				})
			}

			fmt.Printf("partition=%d range=%s hash=%d key=%s\n", i, r, hash, value)
			return nil
		}

		return fmt.Errorf("hash %d not covered, the partitioning is defective", hash)
	})
}

// runLoad fills a fresh collection from the input documents, performs
// the requested number of splits, largest partition first, and prints
// the resulting distribution.
func runLoad(opts Options, def partitionkey.Definition,
	log logrus.FieldLogger,
) error {
	manager, loaded, err := loadCollection(opts, def, log)
	if err != nil {
		return err
	}

	return printDistribution(manager, opts.JSON, loaded)
}

func loadCollection(opts Options, def partitionkey.Definition,
	log logrus.FieldLogger,
) (*collection.Manager, int, error) {
	manager, err := collection.NewManager(def, log, nil)
	if err != nil {
		return nil, 0, err
	}

	input, closeInput, err := openInput(opts.Input)
	if err != nil {
		return nil, 0, err
	}
	defer closeInput()

	loaded := 0
	err = eachLine(input, func(line []byte) error {
		var doc models.Document
		decoder := json.NewDecoder(bytes.NewReader(line))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return fmt.Errorf("document %d: %w", loaded+1, err)
		}

		if _, err := manager.CreateItem(doc); err != nil {
			return fmt.Errorf("document %d: %w", loaded+1, err)
		}

		loaded++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	for i := 0; i < opts.Splits; i++ {
		target := largestPartition(manager.PartitionCounts())
		if err := manager.Split(target); err != nil {
			return nil, 0, fmt.Errorf("split %d of %d: %w", i+1, opts.Splits, err)
		}
	}

	return manager, loaded, nil
}

// runFeed loads the input like the load target, then pages through a
// single partition and prints its records.
func runFeed(opts Options, def partitionkey.Definition, log logrus.FieldLogger) error {
	manager, _, err := loadCollection(opts, def, log)
	if err != nil {
		return err
	}

	records, found := manager.TryReadFeed(opts.Partition, opts.Page, opts.PageSize)
	if !found {
		return fmt.Errorf("partition %d not found", opts.Partition)
	}

	for _, record := range records {
		if opts.JSON {
			if err := printJSON(record); err != nil {
				return err
			}
			continue
		}

		payload, err := json.Marshal(record.Payload())
		if err != nil {
			return err
		}

		fmt.Printf("seq=%d id=%s time=%d payload=%s\n",
			record.SequenceNumber(), record.ID(), record.CreationTimeUnix(), payload)
	}

	return nil
}

func printDistribution(manager *collection.Manager, asJSON bool, loaded int) error {
	partitions := manager.ListPartitions()
	counts := manager.PartitionCounts()

	ids := make([]uint64, 0, len(partitions))
	for id := range partitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	if asJSON {
		report := make([]partitionReport, 0, len(ids))
		for _, id := range ids {
			report = append(report, partitionReport{
				ID:      id,
				Range:   partitions[id],
				Records: counts[id],
			})
		}
		return printJSON(loadReport{Loaded: loaded, Partitions: report})
	}

	fmt.Printf("loaded %d documents into %d partitions\n", loaded, len(ids))
	for _, id := range ids {
		fmt.Printf("partition=%d range=%s records=%d\n", id, partitions[id], counts[id])
	}

	return nil
}

func loadDefinition(path string) (partitionkey.Definition, error) {
	if path == "" {
		return partitionkey.ParseDefinition(nil)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return partitionkey.Definition{}, err
	}

	var cfg configFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return partitionkey.Definition{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return partitionkey.ParseDefinition(cfg.PartitionKey)
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}

func eachLine(input io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if err := fn(line); err != nil {
			return err
		}
	}

	return scanner.Err()
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

func printJSON(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fmt.Println(string(raw))
	return nil
}

// Options represents Command line options
type Options struct {
	Target     string `long:"target" description:"what the tool should do, one of: route, load, feed"`
	Config     string `long:"config" description:"path to a yaml file carrying the partition key definition"`
	Input      string `long:"input" description:"file with one JSON document per line, '-' reads stdin" default:"-"`
	Partitions int    `long:"partitions" description:"number of even partitions the route target projects onto" default:"4"`
	Splits     int    `long:"splits" description:"number of splits the load target performs, largest partition first" default:"0"`
	Partition  uint64 `long:"partition" description:"partition id the feed target reads"`
	Page       int    `long:"page" description:"page index the feed target reads" default:"0"`
	PageSize   int    `long:"page.size" description:"page size the feed target reads" default:"10"`
	JSON       bool   `long:"json" description:"print machine readable JSON instead of text"`
}

type configFile struct {
	PartitionKey map[string]interface{} `yaml:"partitionKey" json:"partitionKey"`
}

type routeResult struct {
	Partition int             `json:"partition"`
	Range     hashrange.Range `json:"range"`
	Hash      uint64          `json:"hash"`
	Key       string          `json:"key"`
}

type partitionReport struct {
	ID      uint64          `json:"id"`
	Range   hashrange.Range `json:"range"`
	Records int             `json:"records"`
}

type loadReport struct {
	Loaded     int               `json:"loaded"`
	Partitions []partitionReport `json:"partitions"`
}
