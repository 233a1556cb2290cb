// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pwd-strength/pkg/hibp"
	"pwd-strength/pkg/strength"
	"pwd-strength/pkg/wordlist"
)

type checkApi struct {
	combiner *strength.Combiner
	set      wordlist.Set
	breach   *hibp.Client
}

func (q *checkApi) checkPassword(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breach := strength.BreachResult{}
	if q.breach != nil {
		count, err := q.breach.PwnedCount(c.Request.Context(), req.Password)
		if err != nil {
			// The structural report is still useful; the breach field says
			// the lookup did not happen.
			log.Warn().Err(err).Msg("breach check failed, reporting it as skipped")
		} else {
			breach = strength.BreachResult{Checked: true, Found: count > 0, Count: count}
		}
	}

	c.JSON(http.StatusOK, q.combiner.Evaluate(req.Password, q.set, breach))
}

// RegisterCheckApi wires the strength endpoint into the given route group.
// wordlistFile may be empty (no blocklist); enableHibp turns on live breach
// lookups per request.
func RegisterCheckApi(group *gin.RouterGroup, wordlistFile string, enableHibp bool) error {
	combiner, err := strength.NewCombiner(strength.DefaultConfig(), strength.ZxcvbnScorer{})
	if err != nil {
		return err
	}

	q := &checkApi{combiner: combiner}

	if wordlistFile != "" {
		if q.set, err = wordlist.Load(wordlistFile); err != nil {
			return err
		}
	}

	if enableHibp {
		if q.breach, err = hibp.NewClient(); err != nil {
			return err
		}
	}

	group.POST("/password", q.checkPassword)

	return nil
}
