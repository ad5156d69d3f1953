package main

import (
	"github.com/yanqian/leetstats/internal/infra/config"
	"github.com/yanqian/leetstats/internal/infra/leetcode"
)

func provideLeetCodeClient(cfg *config.Config) *leetcode.Client {
	return leetcode.NewClient(cfg.LeetCode.BaseURL, cfg.LeetCode.UserAgent, cfg.LeetCode.Timeout)
}
