// Package api 基于 resty 封装的待办服务 HTTP 客户端，直接复用领域结构体
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	apptodo "github.com/todomate/todomate/internal/application/todo"
	"github.com/todomate/todomate/internal/domain/todo"
)

// DefaultTimeout 单次请求超时时间
const DefaultTimeout = 10 * time.Second

// Client 待办服务 HTTP 客户端
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient 创建待办服务 HTTP 客户端
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// APIResponse 通用 API 响应（复用 response.Response 的 JSON 结构）
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// do 执行请求并统一处理成功/错误响应的 JSON 解析
// resty 的 SetResult 仅在 2xx 时解析，SetError 在 4xx/5xx 时解析
// 由于两者的 code/message 字段一致，用同类型接收即可
func do[T any](r *resty.Request, result *APIResponse[T]) *resty.Request {
	return r.SetResult(result).SetError(result)
}

// checkResponse 将非 2xx 响应和非零业务码统一转为错误
func checkResponse(resp *resty.Response, code int, message string) error {
	if resp.IsError() {
		return fmt.Errorf("request failed: status %d: %s", resp.StatusCode(), message)
	}
	if code != 0 {
		return fmt.Errorf("request failed: code %d: %s", code, message)
	}
	return nil
}

// FetchAll 拉取完整待办列表
func (c *Client) FetchAll(ctx context.Context) ([]todo.TodoItem, error) {
	var result APIResponse[[]todo.TodoItem]
	resp, err := do(c.client.R().SetContext(ctx), &result).
		Get("/api/todos")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, result.Code, result.Message); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Create 创建待办
func (c *Client) Create(ctx context.Context, req apptodo.CreateTodoDTO) error {
	var result APIResponse[*todo.TodoItem]
	resp, err := do(c.client.R().SetContext(ctx).SetBody(req), &result).
		Post("/api/todos")
	if err != nil {
		return err
	}
	return checkResponse(resp, result.Code, result.Message)
}

// Update 按 ID 整条替换待办
func (c *Client) Update(ctx context.Context, item todo.TodoItem) error {
	var result APIResponse[*todo.TodoItem]
	resp, err := do(c.client.R().SetContext(ctx).SetBody(item), &result).
		Put(fmt.Sprintf("/api/todos/%d", item.ID))
	if err != nil {
		return err
	}
	return checkResponse(resp, result.Code, result.Message)
}

// Delete 按 ID 删除待办
func (c *Client) Delete(ctx context.Context, id int64) error {
	var result APIResponse[any]
	resp, err := do(c.client.R().SetContext(ctx), &result).
		Delete(fmt.Sprintf("/api/todos/%d", id))
	if err != nil {
		return err
	}
	return checkResponse(resp, result.Code, result.Message)
}

// 编译时检查接口实现
var _ apptodo.RemoteSource = (*Client)(nil)
