package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// YOLOClient is a ComponentDetector backed by an external YOLO inference
// service over HTTP.
//
// The service accepts a multipart image upload on POST <endpoint>/detect and
// responds with:
//
//	{
//	  "detections": [
//	    {"class_id": 0, "confidence": 0.91, "bbox": [x1, y1, x2, y2]},
//	    ...
//	  ],
//	  "model": "yolov8n"
//	}
//
// The client applies no confidence filtering of its own; DetectComponents
// owns the threshold. The http.Client is safe for concurrent use, so one
// YOLOClient may serve concurrent annotation calls.
type YOLOClient struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewYOLOClient creates a detector client for the inference service at
// endpoint. The model name is reported on annotation documents.
func NewYOLOClient(endpoint string) *YOLOClient {
	return &YOLOClient{
		endpoint: endpoint,
		model:    "yolov8n",
		client: &http.Client{
			Timeout: 15 * time.Second, // GPU inference can be slow to warm up
		},
	}
}

// ModelName implements ComponentDetector.
func (c *YOLOClient) ModelName() string {
	return c.model
}

// IsHealthy checks whether the inference service is reachable and loaded.
func (c *YOLOClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

type yoloWireDetection struct {
	ClassID    int       `json:"class_id"`
	Class      string    `json:"class"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"`
}

type yoloWireResult struct {
	Detections []yoloWireDetection `json:"detections"`
	Model      string              `json:"model"`
}

// Detect implements ComponentDetector by uploading the image file to the
// inference service and decoding its boxes.
func (c *YOLOClient) Detect(ctx context.Context, imagePath string) ([]RawDetection, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/detect", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference failed with status: %d", resp.StatusCode)
	}

	var result yoloWireResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	raw := make([]RawDetection, 0, len(result.Detections))
	for _, d := range result.Detections {
		if len(d.BBox) != 4 {
			continue
		}
		raw = append(raw, RawDetection{
			ClassID:    d.ClassID,
			Confidence: d.Confidence,
			X1:         d.BBox[0],
			Y1:         d.BBox[1],
			X2:         d.BBox[2],
			Y2:         d.BBox[3],
		})
	}
	return raw, nil
}
