// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/content-service/internal/authorization"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/openfga"
	"github.com/canonical/content-service/internal/tracing"
)

const (
	StoreName = "content-service"

	configMapStoreKey = "OPENFGA_STORE_ID"
	configMapModelKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaModelResult struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the openfga model of the organization roles",
	Long: `Writes the organization role model to openfga, creating the store when
--fga-store-id is empty. With --print-dsl the model is printed and nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modelVersion, _ := cmd.Flags().GetString("model-version")
		provider := authorization.NewAuthorizationModelProvider(modelVersion)

		if printDSL, _ := cmd.Flags().GetBool("print-dsl"); printDSL {
			dsl := provider.DSL()
			if dsl == "" {
				return fmt.Errorf("unknown authorization model version %q", modelVersion)
			}
			fmt.Fprint(cmd.OutOrStdout(), dsl)
			return nil
		}

		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		if apiURL == "" {
			return fmt.Errorf("--fga-api-url is required")
		}

		result, err := createModel(cmd.Context(), provider, apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMapResource != "" {
			clientset, err := kubernetesClient(kubeconfigPath)
			if err != nil {
				return err
			}
			if err := upsertConfigMap(cmd.Context(), clientset, configMapResource, result); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
		}

		cmd.Printf("Created model: %s\n", result.ModelID)
		if storeID == "" {
			cmd.Printf("Created store: %s\n", result.StoreID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("model-version", "v0", "Version of the authorization model")
	createFgaModelCmd.Flags().Bool("print-dsl", false, "Print the model DSL and exit")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
}

func createModel(ctx context.Context, provider *authorization.AuthorizationModelProvider, apiURL, apiToken, storeID string, verbose bool) (*fgaModelResult, error) {
	model, err := provider.Model()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	logger := logging.NewNoopLogger()
	fgaClient := openfga.NewClient(&openfga.Config{
		ApiScheme: u.Scheme,
		ApiHost:   u.Host,
		StoreID:   storeID,
		ApiToken:  apiToken,
		Debug:     verbose,
		Tracer:    tracing.NewNoopTracer(),
		Monitor:   monitoring.NewNoopMonitor("", logger),
		Logger:    logger,
	})

	if storeID == "" {
		if storeID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		if err := fgaClient.SetStoreID(storeID); err != nil {
			return nil, fmt.Errorf("failed to use store %s: %w", storeID, err)
		}
	}

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &fgaModelResult{StoreID: storeID, ModelID: modelID}, nil
}

func kubernetesClient(kubeconfigPath string) (kubernetes.Interface, error) {
	var (
		config *rest.Config
		err    error
	)

	if kubeconfigPath != "" {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	} else if config, err = rest.InClusterConfig(); err != nil {
		// outside a cluster, fall back to the default kubeconfig
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})
		config, err = kubeConfig.ClientConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}

// upsertConfigMap writes the store and model IDs into the namespace/name configmap,
// creating it when missing and keeping unrelated keys.
func upsertConfigMap(ctx context.Context, clientset kubernetes.Interface, resource string, result *fgaModelResult) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", resource)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data: map[string]string{
				configMapStoreKey: result.StoreID,
				configMapModelKey: result.ModelID,
			},
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	cm.Data[configMapStoreKey] = result.StoreID
	cm.Data[configMapModelKey] = result.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}

	return nil
}
