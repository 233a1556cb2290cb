// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package wordlist loads known-weak password lists into memory for the
// blocklist matcher.
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Set is a case-insensitive membership set of password candidates. Keys are
// folded to lowercase on insert so lookups stay O(1); the matcher folds the
// password side.
type Set map[string]struct{}

// NewSet builds a Set from the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word into the set.
func (s Set) Add(word string) {
	s[strings.ToLower(word)] = struct{}{}
}

// Contains reports case-insensitive membership.
func (s Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Load reads a wordlist file, one candidate per line, into a Set. Blank lines
// are skipped. Surrounding whitespace is kept except for the line terminator;
// leading or trailing spaces can be part of a real password.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	if info, err := file.Stat(); err == nil {
		checkRam(uint64(info.Size()))
	}

	set := make(Set)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		set.Add(line)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	p := message.NewPrinter(language.English)
	log.Debug().Msgf("loaded %s words from %s", p.Sprintf("%d", len(set)), path)
	return set, nil
}

// checkRam warns when the wordlist is about to be slurped into a machine that
// cannot comfortably hold it. The in-memory set costs roughly twice the file
// size once map overhead is counted.
func checkRam(fileBytes uint64) {
	required := (fileBytes * 2) / (1024 * 1024)
	if memStat, err := mem.VirtualMemory(); err == nil {
		log.Debug().Msgf("system has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
		if required > memStat.Available/(1024*1024) {
			log.Warn().Msgf("loading this wordlist needs about %d MiB; the system does not have that much available. Expect swapping.", required)
		}
	} else {
		log.Debug().Msgf("estimated memory use for the wordlist: %d MiB", required)
	}
}
