package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/crozone/ScrapeMonet/internal/models"
)

func TestHeaderManager_GetMergedHeaders(t *testing.T) {
	t.Run("默认头部存在", func(t *testing.T) {
		hm, err := NewHeaderManager(nil, nil)
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}

		headers := hm.GetMergedHeaders()
		if headers.Get("User-Agent") != DefaultUserAgent {
			t.Errorf("期望默认User-Agent, 实际='%s'", headers.Get("User-Agent"))
		}
		if headers.Get("Accept-Encoding") != "gzip, deflate, br" {
			t.Errorf("期望默认Accept-Encoding, 实际='%s'", headers.Get("Accept-Encoding"))
		}
	})

	t.Run("优先级: 默认 < 配置 < 命令行", func(t *testing.T) {
		configHeaders := map[string]string{
			"user-agent": "ConfigBot/1.0",
			"accept":     "image/*",
			"x-from":     "config",
		}
		cliHeaders := []string{
			"User-Agent: CliBot/1.0",
		}

		hm, err := NewHeaderManager(configHeaders, cliHeaders)
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}

		headers := hm.GetMergedHeaders()
		if headers.Get("User-Agent") != "CliBot/1.0" {
			t.Errorf("命令行应覆盖配置, 实际='%s'", headers.Get("User-Agent"))
		}
		if headers.Get("Accept") != "image/*" {
			t.Errorf("配置应覆盖默认, 实际='%s'", headers.Get("Accept"))
		}
		if headers.Get("X-From") != "config" {
			t.Errorf("期望X-From='config', 实际='%s'", headers.Get("X-From"))
		}
	})

	t.Run("返回副本", func(t *testing.T) {
		hm, err := NewHeaderManager(nil, nil)
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}

		first := hm.GetMergedHeaders()
		first.Set("User-Agent", "Mutated")
		first["Accept"][0] = "mutated"

		second := hm.GetMergedHeaders()
		if second.Get("User-Agent") != DefaultUserAgent || second.Get("Accept") != "*/*" {
			t.Error("修改返回值不应影响HeaderManager")
		}
	})
}

func TestHeaderManager_GetSafeHeaders(t *testing.T) {
	cliHeaders := []string{
		"User-Agent: CustomBot/1.0",
		"Authorization: Bearer secret-token-12345",
		"X-Api-Key: api-key-67890",
	}

	hm, err := NewHeaderManager(nil, cliHeaders)
	if err != nil {
		t.Fatalf("创建HeaderManager失败: %v", err)
	}

	safe := hm.GetSafeHeaders()
	if safe["User-Agent"] != "CustomBot/1.0" {
		t.Error("普通头部不应该被脱敏")
	}
	if safe["Authorization"] != "Bearer ***" {
		t.Errorf("期望Authorization='Bearer ***', 实际='%s'", safe["Authorization"])
	}
	if safe["X-Api-Key"] != "api-***7890" {
		t.Errorf("期望X-Api-Key='api-***7890', 实际='%s'", safe["X-Api-Key"])
	}

	str := hm.SafeHeadersString()
	if str == "" {
		t.Fatal("脱敏字符串不应为空")
	}
	for _, secret := range []string{"secret-token-12345", "api-key-67890"} {
		if strings.Contains(str, secret) {
			t.Errorf("脱敏字符串泄露了 %q: %s", secret, str)
		}
	}
}

func TestHeaderManager_GetHeaders(t *testing.T) {
	t.Run("非法命令行参数返回错误", func(t *testing.T) {
		if _, err := NewHeaderManager(nil, []string{"InvalidFormat"}); err == nil {
			t.Error("期望返回错误, 但成功了")
		}
	})

	t.Run("禁止头部返回验证错误", func(t *testing.T) {
		hm, err := NewHeaderManager(nil, []string{"Host: example.com"})
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}

		_, err = hm.GetHeaders()
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("期望ValidationError, 实际: %v", err)
		}
	})

	t.Run("配置中的非法头部同样被拒绝", func(t *testing.T) {
		hm, err := NewHeaderManager(map[string]string{"Bad Name": "x"}, nil)
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}
		if _, err := hm.GetHeaders(); err == nil {
			t.Error("期望返回验证错误, 但成功了")
		}
	})

	t.Run("成功场景", func(t *testing.T) {
		hm, err := NewHeaderManager(nil, []string{"User-Agent: TestBot/1.0", "X-Custom: test-value"})
		if err != nil {
			t.Fatalf("创建HeaderManager失败: %v", err)
		}

		headers, err := hm.GetHeaders()
		if err != nil {
			t.Fatalf("GetHeaders失败: %v", err)
		}
		if headers.Get("User-Agent") != "TestBot/1.0" {
			t.Error("User-Agent未正确设置")
		}
		if headers.Get("X-Custom") != "test-value" {
			t.Error("X-Custom未正确设置")
		}
	})
}
