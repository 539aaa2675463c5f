package catalog

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Decode builds a catalog from its JSON description:
//
//	{
//	  "monsters":   [{"id": 0, "name": "Guard", "xp": 12, "inescapable": false, "escape_difficult": false}],
//	  "formations": [{"id": 0, "enemies": [0, 0], "pincer_prohibited": false, "back_prohibited": true, "cost": 0}],
//	  "sets":       [{"id": 0, "formations": [0, 1, 2, 3], "overworld": true}]
//	}
//
// "cost" is optional (0 derives the cost), "overworld" is optional and
// defaults to id <= OverworldSetLimit. Sections are decoded in order so
// formations may only reference earlier monsters and sets earlier formations.
func Decode(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidCatalog)
	}
	doc := gjson.ParseBytes(data)
	c := New()

	if err := decodeMonsters(c, doc.Get("monsters")); err != nil {
		return nil, err
	}
	if err := decodeFormations(c, doc.Get("formations")); err != nil {
		return nil, err
	}
	if err := decodeSets(c, doc.Get("sets")); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decodeMonsters(c *Catalog, section gjson.Result) error {
	if !section.IsArray() {
		return fmt.Errorf("%w: \"monsters\" must be an array", ErrInvalidCatalog)
	}

	var err error
	section.ForEach(func(_, v gjson.Result) bool {
		id := v.Get("id")
		if !id.Exists() {
			err = fmt.Errorf("%w: monster without id", ErrInvalidCatalog)
			return false
		}
		err = c.AddMonster(&Monster{
			ID:              int(id.Int()),
			Name:            v.Get("name").String(),
			XP:              int(v.Get("xp").Int()),
			Inescapable:     v.Get("inescapable").Bool(),
			EscapeDifficult: v.Get("escape_difficult").Bool(),
		})
		return err == nil
	})

	return err
}

func decodeFormations(c *Catalog, section gjson.Result) error {
	if !section.IsArray() {
		return fmt.Errorf("%w: \"formations\" must be an array", ErrInvalidCatalog)
	}

	var err error
	section.ForEach(func(_, v gjson.Result) bool {
		id := v.Get("id")
		if !id.Exists() {
			err = fmt.Errorf("%w: formation without id", ErrInvalidCatalog)
			return false
		}
		f := &Formation{
			ID:               int(id.Int()),
			PincerProhibited: v.Get("pincer_prohibited").Bool(),
			BackProhibited:   v.Get("back_prohibited").Bool(),
			CostOverride:     v.Get("cost").Float(),
		}
		for _, eid := range v.Get("enemies").Array() {
			m, ok := c.Monster(int(eid.Int()))
			if !ok {
				err = fmt.Errorf("%w: formation %#x references monster %#x", ErrInvalidCatalog, f.ID, eid.Int())
				return false
			}
			f.Enemies = append(f.Enemies, m)
		}
		err = c.AddFormation(f)
		return err == nil
	})

	return err
}

func decodeSets(c *Catalog, section gjson.Result) error {
	if !section.IsArray() {
		return fmt.Errorf("%w: \"sets\" must be an array", ErrInvalidCatalog)
	}

	var err error
	section.ForEach(func(_, v gjson.Result) bool {
		id := v.Get("id")
		if !id.Exists() {
			err = fmt.Errorf("%w: formation set without id", ErrInvalidCatalog)
			return false
		}
		setID := int(id.Int())

		overworld := setID <= OverworldSetLimit
		if ow := v.Get("overworld"); ow.Exists() {
			overworld = ow.Bool()
		}

		var fids []int
		for _, fid := range v.Get("formations").Array() {
			fids = append(fids, int(fid.Int()))
		}
		_, err = c.AddSet(setID, fids, overworld)
		return err == nil
	})

	return err
}
