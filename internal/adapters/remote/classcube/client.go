package classcube

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/ports"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const DefaultBaseURL = "http://k8n.cn"

const defaultTimeout = 30 * time.Second

// The site only serves the student pages to the WeChat in-app browser, so
// every request impersonates it.
const (
	userAgent = "Mozilla/5.0 (Linux; Android 9; AKT-AK47 Build/USER-AK47; wv) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Version/4.0 Chrome/116.0.0.0 Mobile Safari/537.36 XWEB/1160065 " +
		"MMWEBSDK/20231202 MMWEBID/1136 MicroMessenger/8.0.47.2560(0x28002F35) WeChat/arm64 " +
		"Weixin NetType/4G Language/zh_CN ABI/arm64"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/wxpic," +
		"image/tpg,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"
	acceptLanguage = "zh-CN,zh-SG;q=0.9,zh;q=0.8,en-SG;q=0.7,en-US;q=0.6,en;q=0.5"
)

// Client talks to the classroom platform by scraping its student-facing
// HTML pages. There is no JSON API; every operation fetches a page and reads
// markers out of the markup.
type Client struct {
	http    *resty.Client
	baseURL string
	archive *ExchangeArchive
	logger  *slog.Logger
}

var _ ports.CheckInClient = (*Client)(nil)

type Option func(*Client)

// WithArchive keeps a copy of every fetched page on disk.
func WithArchive(archive *ExchangeArchive) Option {
	return func(c *Client) { c.archive = archive }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(timeout) }
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", acceptHeader).
		SetHeader("Accept-Language", acceptLanguage).
		SetHeader("X-Requested-With", "com.tencent.mm")

	client := &Client{http: httpClient, baseURL: baseURL, logger: logger}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// VerifySession fetches the student home page and checks for the account
// link that only renders for a logged-in user. An expired cookie serves the
// login page instead, with status 200, so the status code alone proves
// nothing.
func (c *Client) VerifySession(ctx context.Context, session domain.Session) domain.SessionCheck {
	_, check := c.fetchStudentHome(ctx, session)
	return check
}

// FetchProfile reads the display name and the course list off the student
// home page.
func (c *Client) FetchProfile(ctx context.Context, session domain.Session) (domain.Profile, domain.SessionCheck) {
	root, check := c.fetchStudentHome(ctx, session)
	if check.Status != domain.VerifyValid {
		return domain.Profile{}, check
	}

	profile := domain.Profile{Name: accountName(root)}
	for _, link := range findClassLinks(root) {
		profile.Classes = append(profile.Classes, domain.ClassInfo(link))
	}

	return profile, check
}

func (c *Client) fetchStudentHome(ctx context.Context, session domain.Session) (*html.Node, domain.SessionCheck) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cookie", session.Cookie).
		Get("/student")
	if err != nil {
		return nil, domain.SessionCheck{Status: domain.VerifyTransportError, Detail: err.Error()}
	}

	c.archivePage("student_home", resp.Body())

	if !resp.IsSuccess() {
		return nil, domain.SessionCheck{
			Status: domain.VerifyTransportError,
			Detail: fmt.Sprintf("student page returned status %d", resp.StatusCode()),
		}
	}

	root, err := html.Parse(strings.NewReader(string(resp.Body())))
	if err != nil {
		return nil, domain.SessionCheck{Status: domain.VerifyTransportError, Detail: "unparseable student page"}
	}

	if findAccountLink(root) == nil {
		return nil, domain.SessionCheck{Status: domain.VerifyInvalid, Detail: "login page served instead of student home"}
	}

	return root, domain.SessionCheck{Status: domain.VerifyValid}
}

// ListPendingTasks scrapes the class punch page for active GPS check-in
// tasks.
func (c *Client) ListPendingTasks(ctx context.Context, session domain.Session, classID string) domain.TaskListing {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cookie", session.Cookie).
		SetHeader("Referer", c.baseURL+"/student/course/"+classID).
		Get(fmt.Sprintf("/student/course/%s/punchs", classID))
	if err != nil {
		return domain.TaskListing{Status: domain.ListTransportError, Detail: err.Error()}
	}

	c.archivePage("punch_page", resp.Body())

	if finalURLMentionsLogin(resp) {
		return domain.TaskListing{Status: domain.ListSessionInvalid, Detail: "redirected to login"}
	}
	if !resp.IsSuccess() {
		return domain.TaskListing{
			Status: domain.ListTransportError,
			Detail: fmt.Sprintf("punch page returned status %d", resp.StatusCode()),
		}
	}

	root, err := html.Parse(strings.NewReader(string(resp.Body())))
	if err != nil {
		return domain.TaskListing{Status: domain.ListTransportError, Detail: "unparseable punch page"}
	}

	ids := findPunchTaskIDs(root)
	if len(ids) == 0 {
		return domain.TaskListing{Status: domain.ListEmpty}
	}

	c.logger.Debug("pending check-in tasks found", "class", classID, "tasks", ids)
	return domain.TaskListing{Status: domain.ListFound, TaskIDs: ids}
}

// SubmitCheckIn posts the GPS form for one task. The coordinates arrive
// already jittered; the client sends them verbatim.
func (c *Client) SubmitCheckIn(ctx context.Context, session domain.Session, target domain.CheckInTarget, taskID string, longitude, latitude float64) domain.SubmitResult {
	accuracy := target.Accuracy
	if accuracy == "" {
		accuracy = "10"
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cookie", session.Cookie).
		SetHeader("Origin", c.baseURL).
		SetHeader("Referer", fmt.Sprintf("%s/student/course/%s/punchs", c.baseURL, target.ClassID)).
		SetFormData(map[string]string{
			"id":       taskID,
			"lat":      formatCoordinate(latitude),
			"lng":      formatCoordinate(longitude),
			"acc":      accuracy,
			"res":      "",
			"gps_addr": "",
		}).
		Post(fmt.Sprintf("/student/punchs/course/%s/%s", target.ClassID, taskID))
	if err != nil {
		return domain.SubmitResult{Status: domain.SubmitTransportError, Message: err.Error()}
	}

	c.archivePage("sign_result", resp.Body())

	if !resp.IsSuccess() {
		return domain.SubmitResult{
			Status:  domain.SubmitTransportError,
			Message: fmt.Sprintf("check-in returned status %d", resp.StatusCode()),
		}
	}

	return classifySubmitResponse(string(resp.Body()))
}

func (c *Client) archivePage(kind string, body []byte) {
	if c.archive == nil {
		return
	}

	path, err := c.archive.Save(kind, body)
	if err != nil {
		c.logger.Warn("failed to archive page", "kind", kind, "err", err)
		return
	}
	c.logger.Debug("page archived", "kind", kind, "path", path)
}

func finalURLMentionsLogin(resp *resty.Response) bool {
	raw := resp.RawResponse
	if raw == nil || raw.Request == nil || raw.Request.URL == nil {
		return false
	}
	return strings.Contains(raw.Request.URL.Path, "login")
}

func formatCoordinate(coordinate float64) string {
	return strconv.FormatFloat(coordinate, 'f', -1, 64)
}
