package classcube

import (
	"strings"

	"github.com/bnema/cubesign/internal/domain"
	"golang.org/x/net/html"
)

var (
	alreadySignedMarkers = []string{"已签", "重复"}
	failureMarkers       = []string{"失败", "不在签到范围", "超出签到范围", "不在签到时间"}
	successMarker        = "成功"
)

// classifySubmitResponse turns the HTML page returned by a check-in POST
// into a submit result. The page carries no machine-readable status, so
// classification works outward from the most specific marker: the div#title
// result banner, then the layui dialog body, then keywords anywhere in the
// page text. Already-signed markers outrank failure markers, which outrank
// success, since "重复签到失败" must never be read as a plain failure. A page
// with no recognizable marker is reported as unconfirmed rather than failed.
func classifySubmitResponse(body string) domain.SubmitResult {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return classifyText(body)
	}

	marker := ""
	if banner := findElementByID(root, "title"); banner != nil {
		marker = nodeText(banner)
	}
	if marker == "" {
		if layer := findElementByClass(root, "layui-layer-content"); layer != nil {
			marker = nodeText(layer)
		}
	}
	if marker != "" {
		return classifyMarker(marker)
	}

	return classifyText(nodeText(root))
}

func classifyMarker(marker string) domain.SubmitResult {
	switch {
	case containsAny(marker, alreadySignedMarkers):
		return domain.SubmitResult{Status: domain.SubmitAlreadySigned, Message: marker}
	case strings.Contains(marker, successMarker):
		return domain.SubmitResult{Status: domain.SubmitSuccess, Message: marker}
	default:
		// The banner exists but reads like an error, e.g. 不在签到范围内.
		return domain.SubmitResult{Status: domain.SubmitRejected, Message: marker}
	}
}

func classifyText(text string) domain.SubmitResult {
	switch {
	case containsAny(text, alreadySignedMarkers):
		return domain.SubmitResult{Status: domain.SubmitAlreadySigned}
	case containsAny(text, failureMarkers):
		return domain.SubmitResult{Status: domain.SubmitRejected}
	case strings.Contains(text, successMarker):
		return domain.SubmitResult{Status: domain.SubmitSuccess}
	default:
		return domain.SubmitResult{Status: domain.SubmitUnconfirmed}
	}
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
