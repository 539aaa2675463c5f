package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/encrouter/catalog"
)

const (
	commentPrefix = "#"
	placeholder   = "-"
	fightMarker   = "fight"
)

// Parse reads a route script, resolving formation and set ids against cat.
//
// The first veldt line of a script is the one where Gau is not yet
// recruited; its battles are fled. A force line takes the zone of the
// closest preceding travel, which must not be the Veldt.
func Parse(r io.Reader, cat *catalog.Catalog) (*Script, error) {
	p := &parser{cat: cat}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		in, err := p.parseLine(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidScript, p.line, err)
		}
		p.instrs = append(p.instrs, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read route: %w", err)
	}
	if len(p.instrs) == 0 {
		return nil, fmt.Errorf("%w: no instructions", ErrInvalidScript)
	}

	return New(p.instrs...), nil
}

// ParseFile opens path and parses it as a route script.
func ParseFile(path string, cat *catalog.Catalog) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: open route: %w", err)
	}
	defer f.Close()

	s, err := Parse(f, cat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// parser carries the state that spans lines.
type parser struct {
	cat        *catalog.Catalog
	line       int
	instrs     []Instruction
	lastTravel *Travel
	veldted    bool
}

func (p *parser) parseLine(fields []string) (Instruction, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	tag, arg, value := fields[0], fields[1], fields[2]

	switch tag {
	case "ev":
		id, err := parseHex(value)
		if err != nil {
			return nil, err
		}
		f, err := p.cat.Formation(id)
		if err != nil {
			return nil, err
		}
		return &Event{Formation: f}, nil

	case "rd":
		id, err := parseHex(value)
		if err != nil {
			return nil, err
		}
		set, err := p.cat.Set(id)
		if err != nil {
			return nil, err
		}
		return &Random{Set: set}, nil

	case "wt":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("bad weight %q", value)
		}
		return &Weight{Value: w}, nil

	case "sb":
		on, err := parseSwitch(value)
		if err != nil {
			return nil, err
		}
		return &SmokeBombs{On: on}, nil

	case "re":
		c, err := ParseCounter(arg)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("bad restriction value %q", value)
		}
		return &Restriction{Counter: c, Value: v}, nil

	case "lete":
		return &Lete{}, nil

	case "reset":
		return &Reset{}, nil

	case "fc":
		if p.lastTravel == nil {
			return nil, fmt.Errorf("force without a preceding travel")
		}
		if p.lastTravel.Veldt {
			return nil, fmt.Errorf("force after a veldt travel")
		}
		return &Force{Zone: p.lastTravel.Zone}, nil

	case "vl":
		t, err := p.parseVeldt(arg, value)
		if err != nil {
			return nil, err
		}
		p.lastTravel = t
		return t, nil
	}

	t, err := p.parseTravel(tag, arg, value)
	if err != nil {
		return nil, err
	}
	p.lastTravel = t
	return t, nil
}

func (p *parser) parseVeldt(rage, value string) (*Travel, error) {
	steps, err := strconv.Atoi(value)
	if err != nil || steps < 0 {
		return nil, fmt.Errorf("bad step count %q", value)
	}
	t := &Travel{
		Zone:  Zone{ThreatRate: VeldtThreatRate, ForceThreat: true, Veldt: true},
		Steps: steps,
	}
	if enemy, err := parseHex(rage); err == nil {
		t.SeekRage = true
		t.DesiredFormations = p.cat.FormationsWithEnemy(enemy)
	}
	if !p.veldted {
		t.AvoidGau = true
		p.veldted = true
	}
	return t, nil
}

func (p *parser) parseTravel(setField, rateField, stepsField string) (*Travel, error) {
	id, err := parseHex(setField)
	if err != nil {
		return nil, fmt.Errorf("unknown directive %q", setField)
	}
	set, err := p.cat.Set(id)
	if err != nil {
		return nil, err
	}

	force := strings.HasSuffix(rateField, "!")
	rate, err := parseHex(strings.TrimSuffix(rateField, "!"))
	if err != nil {
		return nil, fmt.Errorf("bad threat rate %q", rateField)
	}

	steps, err := parseSteps(stepsField)
	if err != nil {
		return nil, err
	}

	return &Travel{
		Zone:  Zone{Set: set, ThreatRate: rate, ForceThreat: force},
		Steps: steps,
	}, nil
}

// parseSteps accepts "n" or "n-m" (n minus m).
func parseSteps(s string) (int, error) {
	head, sub, found := strings.Cut(s, placeholder)
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("bad step count %q", s)
	}
	if found {
		m, err := strconv.Atoi(sub)
		if err != nil {
			return 0, fmt.Errorf("bad step count %q", s)
		}
		n -= m
	}
	if n < 0 {
		return 0, fmt.Errorf("negative step count %q", s)
	}
	return n, nil
}

func parseHex(s string) (int, error) {
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("bad hex value %q", s)
	}
	return int(v), nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("bad switch %q", s)
	}
	return b, nil
}

// ParseRiver reads a river table: exactly TableSize lines, "fight" marks a
// battle and anything else marks none.
func ParseRiver(r io.Reader) (RiverTable, error) {
	var t RiverTable
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		if n == TableSize {
			return RiverTable{}, fmt.Errorf("%w: river table longer than %d lines", ErrInvalidTable, TableSize)
		}
		t[n] = strings.TrimSpace(sc.Text()) == fightMarker
		n++
	}
	if err := sc.Err(); err != nil {
		return RiverTable{}, fmt.Errorf("script: read river table: %w", err)
	}
	if n != TableSize {
		return RiverTable{}, fmt.Errorf("%w: river table has %d lines, want %d", ErrInvalidTable, n, TableSize)
	}
	return t, nil
}

// ParseSeedTable reads "<hex> <hex>" pairs. Comment lines and pairs that are
// not hexadecimal are skipped; any other line shape is an error.
func ParseSeedTable(r io.Reader) (SeedTable, error) {
	t := NewSeedTable()
	sc := bufio.NewScanner(r)
	line, entries := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return SeedTable{}, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrInvalidTable, line, len(fields))
		}
		from, errA := parseHex(fields[0])
		to, errB := parseHex(fields[1])
		if errA != nil || errB != nil {
			continue
		}
		if from >= TableSize || to >= TableSize {
			return SeedTable{}, fmt.Errorf("%w: line %d: seed out of range", ErrInvalidTable, line)
		}
		t[from] = to
		entries++
	}
	if err := sc.Err(); err != nil {
		return SeedTable{}, fmt.Errorf("script: read seed table: %w", err)
	}
	if entries == 0 {
		return SeedTable{}, fmt.Errorf("%w: seed table is empty", ErrInvalidTable)
	}
	return t, nil
}

// LoadRiver reads the river table at path.
func LoadRiver(path string) (RiverTable, error) {
	return loadWith(path, ParseRiver)
}

// LoadSeedTable reads the seed table at path.
func LoadSeedTable(path string) (SeedTable, error) {
	return loadWith(path, ParseSeedTable)
}

func loadWith[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("script: open table: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
