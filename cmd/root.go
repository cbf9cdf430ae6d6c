/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	adapterrepo "github.com/eslsoft/wordlist/internal/adapter/repository"
	"github.com/eslsoft/wordlist/internal/app"
	"github.com/eslsoft/wordlist/internal/infrastructure/config"
	"github.com/eslsoft/wordlist/internal/usecase"
)

const (
	outputFileKey  = "output.file"
	llmEnabledKey  = "llm.enabled"
	llmAPIKeyKey   = "llm.api_key"
	llmAPIBaseKey  = "llm.api_base"
	llmModelKey    = "llm.model"
	llmProviderKey = "llm.provider"
	llmDelayKey    = "llm.request_delay"
	logLevelKey    = "log.level"
	logFormatKey   = "log.format"

	defaultOutputFile = "wordlist_5_letters.json"
	defaultModel      = "gpt-3.5-turbo"
	configFileName    = "wordlist.yaml"
)

var cfgFile string

const rootLong = `逐行读取输入文件 (每行一个单词)，去除首尾空白并转为小写后，仅保留恰好五个字母的单词，
保持原有顺序并保留重复项。可选地调用 LLM 获取中文释义与词性，获取失败时使用 "-" 占位。
输入文件使用 - 表示标准输入，输出文件使用 - 表示标准输出。`

// rootCmd filters a word file into a five-letter JSON wordlist
var rootCmd = &cobra.Command{
	Use:          "wordlist <input_file>",
	Short:        "从文本文件生成五字母单词 JSON 词库",
	Long:         rootLong,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return describeError(err)
		}

		container, err := app.Initialize(cfg, cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("初始化失败: %w", err)
		}
		log := container.Logger

		inputPath := args[0]
		outputPath := cfg.Output.File
		if outputPath == "" {
			outputPath = defaultOutputFile
		}
		enrich := cfg.LLM.Enabled && cfg.HasCredential()

		log.WithFields(logrus.Fields{
			"input":            inputPath,
			"output":           outputPath,
			"use_llm":          cfg.LLM.Enabled,
			"api_key_provided": cfg.HasCredential(),
			"api_base":         cfg.LLM.APIBase,
			"provider":         cfg.LLM.Provider,
			"model":            cfg.LLM.Model,
		}).Info("generating wordlist")

		opts := []usecase.GenerateOption{
			usecase.WithEnrichment(enrich),
			usecase.WithRequestDelay(cfg.LLM.RequestDelay),
		}
		if enrich {
			opts = append(opts, usecase.WithProgressReporter(newCLIProgress(cmd.ErrOrStderr())))
		}

		summary, err := container.Wordlist.Generate(cmd.Context(), usecase.GenerateRequest{
			InputPath:  inputPath,
			Stdin:      cmd.InOrStdin(),
			OutputPath: outputPath,
		}, opts...)
		if err != nil {
			return describeError(err)
		}

		log.WithFields(logrus.Fields{
			"output":   outputPath,
			"total":    summary.Total,
			"enriched": summary.Enriched,
			"fallback": summary.Fallback,
		}).Info("wordlist generated")
		if outputPath != adapterrepo.StdoutPath {
			cmd.Printf("生成完成: %s (共 %d 个五字母单词)\n", outputPath, summary.Total)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认查找 ./wordlist.yaml 与用户配置目录下的 wordlist/wordlist.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "日志级别 (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "日志格式 (text, json)")

	rootCmd.Flags().StringP("output_file", "o", defaultOutputFile, "输出 JSON 文件路径，使用 - 表示标准输出")
	rootCmd.Flags().Bool("use-llm", false, "启用 LLM 获取中文释义与词性")
	rootCmd.Flags().String("api-key", "", "LLM API 密钥，启用 --use-llm 时必填 (也可通过 OPENAI_API_KEY 提供)")
	rootCmd.Flags().String("api-base", "", "兼容 OpenAI 接口的自定义服务地址")
	rootCmd.Flags().String("model", defaultModel, "LLM 模型名称")
	rootCmd.Flags().String("provider", config.ProviderOpenAI, "LLM 服务类型 (openai, anthropic)")
	rootCmd.Flags().Duration("request-delay", 0, "相邻两次 LLM 请求之间的等待时间，例如 1s")

	bindRootConfig()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "wordlist"))
	}
	if path := findConfigFile(dirs); path != "" {
		viper.SetConfigFile(path)
	}
}

// findConfigFile returns the first regular configFileName found in dirs.
// The name is matched exactly so a built "wordlist" binary is never read as config.
func findConfigFile(dirs []string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, configFileName)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func bindRootConfig() {
	bindFlagToViper(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper(logFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	bindFlagToViper(outputFileKey, rootCmd.Flags().Lookup("output_file"))
	bindFlagToViper(llmEnabledKey, rootCmd.Flags().Lookup("use-llm"))
	bindFlagToViper(llmAPIKeyKey, rootCmd.Flags().Lookup("api-key"))
	bindFlagToViper(llmAPIBaseKey, rootCmd.Flags().Lookup("api-base"))
	bindFlagToViper(llmModelKey, rootCmd.Flags().Lookup("model"))
	bindFlagToViper(llmProviderKey, rootCmd.Flags().Lookup("provider"))
	bindFlagToViper(llmDelayKey, rootCmd.Flags().Lookup("request-delay"))
}
