/*
Copyright © 2018 the glasstone authors.
This file is part of glasstone.

glasstone is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glasstone is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glasstone.  If not, see <http://www.gnu.org/licenses/>.
*/

package grid

import (
	"context"
	"runtime"

	"github.com/ctessum/requestcache"

	"github.com/spatialmodel/glasstone/airblast"
	"github.com/spatialmodel/glasstone/internal/hash"
)

// ScenarioCache holds airblast scenarios so that each combination of
// yield, ground range and height of burst is only set up once when it
// is queried repeatedly, for example while sampling a waveform or
// computing several quantities for the same grid cell. It is safe for
// concurrent use; concurrent requests for the same scenario share one
// computation.
type ScenarioCache struct {
	c *requestcache.Cache
}

// scenarioKey identifies a scenario in kT and m.
type scenarioKey struct {
	Yield, Range, Height float64
}

// NewScenarioCache returns a cache holding up to size scenarios.
func NewScenarioCache(size int) *ScenarioCache {
	return &ScenarioCache{
		c: requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			k := request.(scenarioKey)
			return airblast.NewScenario(k.Yield, k.Range, k.Height), nil
		}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(size)),
	}
}

// Scenario returns the scenario for a burst of yield [kT] at height [m]
// observed at ground range r [m].
func (s *ScenarioCache) Scenario(ctx context.Context, yield, r, height float64) (*airblast.Scenario, error) {
	k := scenarioKey{Yield: yield, Range: r, Height: height}
	result, err := s.c.NewRequest(ctx, k, hash.Key("airblast", k)).Result()
	if err != nil {
		return nil, err
	}
	return result.(*airblast.Scenario), nil
}
