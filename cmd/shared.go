package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/wordlist/internal/entity"
)

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// describeError turns a fatal run error into the message shown to the user.
func describeError(err error) error {
	switch {
	case errors.Is(err, entity.ErrMissingAPIKey):
		return fmt.Errorf("启用 --use-llm 时必须通过 --api-key 提供 API 密钥: %w", err)
	case errors.Is(err, entity.ErrUnknownProvider):
		return fmt.Errorf("不支持的 LLM 服务类型: %w", err)
	case errors.Is(err, entity.ErrEnricherUnavailable):
		return fmt.Errorf("LLM 客户端不可用，无法获取释义: %w", err)
	case errors.Is(err, entity.ErrSourceNotFound):
		return fmt.Errorf("输入文件不存在: %w", err)
	case errors.Is(err, entity.ErrSourceRead):
		return fmt.Errorf("读取输入文件失败: %w", err)
	case errors.Is(err, entity.ErrOutputWrite):
		return fmt.Errorf("写入 JSON 文件失败: %w", err)
	default:
		return fmt.Errorf("生成词库失败: %w", err)
	}
}
