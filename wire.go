//go:build wireinject

package pvbu

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/x/account"
	"github.com/sipradi/pvbu/x/auth"
	"github.com/sipradi/pvbu/x/policy"
	"github.com/sipradi/pvbu/x/resource"
	"github.com/sipradi/pvbu/x/rule"
)

var policyServiceProvider = wire.NewSet(policy.NewService, policy.NewRepository)
var accountServiceProvider = wire.NewSet(account.NewService, account.NewRepository, policyServiceProvider)

func SetupPolicyService(db *gorm.DB, rdb *redis.Client, config core.Config) core.PolicyService {
	wire.Build(policyServiceProvider)
	return nil
}

func SetupRuleService(db *gorm.DB, rdb *redis.Client, config core.Config) core.RuleService {
	wire.Build(rule.NewService, rule.NewRepository, policyServiceProvider)
	return nil
}

func SetupResourceService(db *gorm.DB, config core.Config) core.ResourceService {
	wire.Build(resource.NewService, resource.NewRepository)
	return nil
}

func SetupAccountService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.AccountService {
	wire.Build(accountServiceProvider)
	return nil
}

func SetupAuthService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.AuthService {
	wire.Build(auth.NewService, auth.NewRepository, accountServiceProvider)
	return nil
}
